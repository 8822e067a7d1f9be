// Package money provides the rounding discipline shared by all calculators.
package money

import "github.com/shopspring/decimal"

// Round2 rounds to 2 decimal places, half away from zero. Every currency and
// percentage figure exposed by the ancillary calculators and the supply
// engine passes through here.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
