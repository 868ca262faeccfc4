package domain

import (
	"strings"
)

const (
	minRutBodyLength = 7
	maxRutBodyLength = 8
)

// NormalizeRut приводит RUT к виду 12345678-K и проверяет контрольную цифру.
// Принимает точки, дефис и строчную k.
func NormalizeRut(raw string) (string, bool) {
	cleaned := strings.ToUpper(strings.NewReplacer(".", "", "-", "", " ", "").Replace(raw))
	if len(cleaned) < minRutBodyLength+1 || len(cleaned) > maxRutBodyLength+1 {
		return "", false
	}

	body, dv := cleaned[:len(cleaned)-1], cleaned[len(cleaned)-1]
	for _, ch := range body {
		if ch < '0' || ch > '9' {
			return "", false
		}
	}

	if rutCheckDigit(body) != dv {
		return "", false
	}
	return body + "-" + string(dv), true
}

// rutCheckDigit считает контрольную цифру по модулю 11 (веса 2..7 справа налево)
func rutCheckDigit(body string) byte {
	sum, weight := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}

	switch rest := 11 - sum%11; rest {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + rest)
	}
}
