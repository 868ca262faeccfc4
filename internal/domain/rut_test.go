package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRut(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "plain with dash", raw: "12345678-5", want: "12345678-5", ok: true},
		{name: "with dots", raw: "12.345.678-5", want: "12345678-5", ok: true},
		{name: "no dash", raw: "111111111", want: "11111111-1", ok: true},
		{name: "lowercase k", raw: "1000005-k", want: "1000005-K", ok: true},
		{name: "wrong check digit", raw: "12345678-9", ok: false},
		{name: "letters in body", raw: "12A45678-5", ok: false},
		{name: "too short", raw: "123-4", ok: false},
		{name: "too long", raw: "1234567890-1", ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeRut(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
