package money

import "github.com/shopspring/decimal"

// MinorToMajor converts an amount in minor units (sats-equivalent cents) to its
// major-unit value, rounded to 2 decimal places half away from zero.
// E.g. 1235 cents -> 12.35
func MinorToMajor(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(decimal.NewFromInt(100)).Round(2)
}

// MajorToMinor converts a major-unit amount (e.g. a raw USD column) to minor
// units, rounding half away from zero. E.g. 12.345 -> 1235
func MajorToMinor(major float64) int64 {
	return decimal.NewFromFloat(major).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ApplyRatio multiplies an integer amount by a ratio and rounds the result
// half away from zero. Used for proportional fees.
func ApplyRatio(amount int64, ratio float64) int64 {
	return decimal.NewFromInt(amount).Mul(decimal.NewFromFloat(ratio)).Round(0).IntPart()
}
