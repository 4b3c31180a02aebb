package common

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal renders the exact value of a, rounded half away from zero to the
// given number of decimal places.
func (a Arg) Decimal(places int32) (string, error) {
	if places < 0 {
		return "", fmt.Errorf("invalid decimal places %d", places)
	}
	r := a.MixedToImproper()
	if r.Denominator == 0 {
		return "", fmt.Errorf("%w in %s", ErrDivByZero, a)
	}
	num := decimal.New(r.Numerator, 0)
	den := decimal.New(r.Denominator, 0)
	return num.DivRound(den, places).StringFixed(places), nil
}
