package currency

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/commission/internal/config"
	"github.com/cleared-dev/commission/internal/model"
)

// Converter translates amounts between a transaction currency and the
// reference currency using fixed rates. A rate is the number of units of
// the currency per one reference unit.
//
// Codes without a rate are passed through unchanged in both directions.
// That mirrors the historical behavior and is not treated as an error.
type Converter struct {
	reference model.Currency
	rates     map[model.Currency]decimal.Decimal
}

// New creates a Converter. The rates map is copied.
func New(reference model.Currency, rates map[model.Currency]decimal.Decimal) *Converter {
	r := make(map[model.Currency]decimal.Decimal, len(rates))
	for c, rate := range rates {
		r[c] = rate
	}
	return &Converter{reference: reference, rates: r}
}

// FromConfig creates a Converter from the configured rates.
func FromConfig(cfg *config.Config) *Converter {
	return New(cfg.ReferenceCurrency, cfg.Rates)
}

// Default returns a Converter with the stock EUR/USD/JPY rates.
func Default() *Converter {
	return FromConfig(config.Default())
}

// Reference returns the reference currency code.
func (c *Converter) Reference() model.Currency {
	return c.reference
}

// ToReference converts amount from cur into the reference currency.
func (c *Converter) ToReference(amount decimal.Decimal, cur model.Currency) decimal.Decimal {
	rate, ok := c.rate(cur)
	if !ok {
		return amount
	}
	return amount.Div(rate)
}

// FromReference converts amount from the reference currency into cur.
func (c *Converter) FromReference(amount decimal.Decimal, cur model.Currency) decimal.Decimal {
	rate, ok := c.rate(cur)
	if !ok {
		return amount
	}
	return amount.Mul(rate)
}

// Supports reports whether cur is the reference currency or has a rate.
func (c *Converter) Supports(cur model.Currency) bool {
	if cur == c.reference {
		return true
	}
	_, ok := c.rates[cur]
	return ok
}

func (c *Converter) rate(cur model.Currency) (decimal.Decimal, bool) {
	if cur == c.reference {
		return decimal.Decimal{}, false
	}
	rate, ok := c.rates[cur]
	return rate, ok
}
