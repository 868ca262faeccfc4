package domain

import (
	"math"
	"time"
)

// CalculateAmount считает стоимость бронирования: цена за час * длительность в часах,
// с округлением до двух знаков. Сумма, присланная клиентом, никогда не используется.
func CalculateAmount(pricePerHour float64, start, end time.Time) float64 {
	minutes := end.Sub(start).Minutes()
	if minutes <= 0 {
		return 0
	}
	return roundMoney(pricePerHour * minutes / 60)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// Shortfall сколько не хватает на балансе для оплаты amount. 0, если хватает.
func Shortfall(balance, amount float64) float64 {
	diff := roundMoney(amount - balance)
	if diff <= 0 {
		return 0
	}
	return diff
}
