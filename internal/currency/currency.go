// Package currency holds the money helpers used by the financial screens.
package currency

import "math"

// Base is the currency totals are reported in.
const Base = "EGP"

// Round2 rounds v to two decimals, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ConvertToEGP converts amount at rate and rounds to two decimals.
func ConvertToEGP(amount, rate float64) float64 {
	return Round2(amount * rate)
}

// Convert converts amount from one currency into another given rates quoted
// against Base. ok is false when a rate is missing.
func Convert(amount float64, from, to string, toBase map[string]float64) (float64, bool) {
	if from == to {
		return Round2(amount), true
	}
	fromRate, ok := rate(from, toBase)
	if !ok {
		return 0, false
	}
	toRate, ok := rate(to, toBase)
	if !ok || toRate == 0 {
		return 0, false
	}
	return Round2(amount * fromRate / toRate), true
}

func rate(code string, toBase map[string]float64) (float64, bool) {
	if code == Base {
		return 1, true
	}
	r, ok := toBase[code]
	return r, ok
}
