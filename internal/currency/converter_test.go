package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/commission/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestToReference(t *testing.T) {
	c := Default()

	tests := []struct {
		amount string
		cur    model.Currency
		want   string
	}{
		{"100", model.CurrencyEUR, "100"},
		{"114.97", model.CurrencyUSD, "100"},
		{"12953", model.CurrencyJPY, "100"},
		{"0", model.CurrencyUSD, "0"},
	}
	for _, tt := range tests {
		got := c.ToReference(dec(tt.amount), tt.cur)
		assert.True(t, got.Equal(dec(tt.want)), "ToReference(%s %s) = %s", tt.amount, tt.cur, got)
	}
}

func TestFromReference(t *testing.T) {
	c := Default()

	tests := []struct {
		amount string
		cur    model.Currency
		want   string
	}{
		{"5", model.CurrencyEUR, "5"},
		{"5", model.CurrencyUSD, "5.7485"},
		{"0.5", model.CurrencyJPY, "64.765"},
	}
	for _, tt := range tests {
		got := c.FromReference(dec(tt.amount), tt.cur)
		assert.True(t, got.Equal(dec(tt.want)), "FromReference(%s %s) = %s", tt.amount, tt.cur, got)
	}
}

func TestUnknownCurrencyPassesThrough(t *testing.T) {
	c := Default()
	amount := dec("42.42")

	assert.True(t, c.ToReference(amount, "GBP").Equal(amount))
	assert.True(t, c.FromReference(amount, "GBP").Equal(amount))
	assert.False(t, c.Supports("GBP"))
	assert.True(t, c.Supports(model.CurrencyEUR))
	assert.True(t, c.Supports(model.CurrencyJPY))
}

func TestNewCopiesRates(t *testing.T) {
	rates := map[model.Currency]decimal.Decimal{"GBP": dec("0.5")}
	c := New(model.CurrencyEUR, rates)
	rates["GBP"] = dec("2")

	assert.True(t, c.ToReference(dec("1"), "GBP").Equal(dec("2")))
	assert.Equal(t, model.CurrencyEUR, c.Reference())
}

func TestRoundTripWithinPrecision(t *testing.T) {
	c := Default()
	amount := dec("100.00")

	back := c.FromReference(c.ToReference(amount, model.CurrencyUSD), model.CurrencyUSD)
	assert.True(t, back.Sub(amount).Abs().LessThan(dec("0.000000001")), "got %s", back)
}
