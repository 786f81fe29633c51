// Package rounding renders commission amounts. Amounts are always rounded
// up at the currency's precision so a fee is never under-charged.
package rounding

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/commission/internal/config"
	"github.com/cleared-dev/commission/internal/model"
)

// noisePlaces absorbs the tail left by dividing and re-multiplying by a
// conversion rate, so 5.7485000000000000001 does not ceil to a new cent.
const noisePlaces = 10

// Formatter rounds and renders amounts per currency precision.
type Formatter struct {
	precision config.PrecisionConfig
}

// NewFormatter creates a Formatter from a precision table.
func NewFormatter(p config.PrecisionConfig) *Formatter {
	return &Formatter{precision: p}
}

var std = NewFormatter(config.Default().Precision)

// Format renders amount with the stock precision table: JPY as a whole
// number, everything else with exactly two decimals.
func Format(amount decimal.Decimal, cur model.Currency) string {
	return std.Format(amount, cur)
}

// Format rounds amount up at the currency's precision and renders it with
// that many decimals, "." as separator and no grouping.
func (f *Formatter) Format(amount decimal.Decimal, cur model.Currency) string {
	places := f.precision.Places(cur)
	return Ceil(amount, places).StringFixed(places)
}

// Ceil rounds amount up to places decimals.
func Ceil(amount decimal.Decimal, places int32) decimal.Decimal {
	return amount.Round(noisePlaces).RoundCeil(places)
}
