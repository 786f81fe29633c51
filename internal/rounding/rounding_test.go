package rounding

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/commission/internal/config"
	"github.com/cleared-dev/commission/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount string
		cur    model.Currency
		want   string
	}{
		{"1.001", model.CurrencyEUR, "1.01"},
		{"0.3", model.CurrencyEUR, "0.30"},
		{"0", model.CurrencyEUR, "0.00"},
		{"0.6948", model.CurrencyEUR, "0.70"},
		{"5", model.CurrencyEUR, "5.00"},
		{"5.7485", model.CurrencyUSD, "5.75"},
		{"3000.1", model.CurrencyUSD, "3000.10"},
		{"1234567.891", model.CurrencyEUR, "1234567.90"},
		{"0.1", model.CurrencyJPY, "1"},
		{"1.10", model.CurrencyJPY, "2"},
		{"8611.41", model.CurrencyJPY, "8612"},
		{"0", model.CurrencyJPY, "0"},
		{"64.765", model.CurrencyJPY, "65"},
		{"2.5", "GBP", "2.50"},
	}
	for _, tt := range tests {
		got := Format(dec(tt.amount), tt.cur)
		assert.Equal(t, tt.want, got, "Format(%s, %s)", tt.amount, tt.cur)
	}
}

func TestFormat_IgnoresConversionNoise(t *testing.T) {
	assert.Equal(t, "5.75", Format(dec("5.74850000000000001"), model.CurrencyUSD))
	assert.Equal(t, "0.60", Format(dec("0.5999999999999999"), model.CurrencyEUR))
}

func TestFormatter_CustomPrecision(t *testing.T) {
	f := NewFormatter(config.PrecisionConfig{
		Default:    2,
		Currencies: map[model.Currency]int32{"KWD": 3, model.CurrencyJPY: 0},
	})

	assert.Equal(t, "1.235", f.Format(dec("1.2341"), "KWD"))
	assert.Equal(t, "1.24", f.Format(dec("1.2341"), model.CurrencyEUR))
	assert.Equal(t, "2", f.Format(dec("1.2341"), model.CurrencyJPY))
}

func TestCeil(t *testing.T) {
	assert.True(t, Ceil(dec("0.001"), 2).Equal(dec("0.01")))
	assert.True(t, Ceil(dec("0.01"), 2).Equal(dec("0.01")))
	assert.True(t, Ceil(dec("7"), 0).Equal(dec("7")))
}
