package common

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Arg is a mixed number Whole + Numerator/Denominator. After MixedToImproper
// the Whole part is 0 and the value is the single fraction
// Numerator/Denominator.
type Arg struct {
	Whole       int64
	Numerator   int64
	Denominator int64
}

// ParseArg accepts W, N/D or W_N/D. The token is split on "_" first and
// every piece on "/" after, so the segment count alone decides the shape.
func ParseArg(s string) (Arg, error) {
	var parts []int64
	for _, p := range strings.Split(s, "_") {
		for _, c := range strings.Split(p, "/") {
			i, err := strconv.ParseInt(c, 10, 64)
			if err != nil {
				return Arg{}, fmt.Errorf("%w %q in %q", ErrIntegerParse, c, s)
			}
			parts = append(parts, i)
		}
	}

	switch len(parts) {
	case 1:
		return Arg{Whole: parts[0], Numerator: 0, Denominator: 1}, nil
	case 2:
		if parts[1] == 0 {
			return Arg{}, fmt.Errorf("%w in %q", ErrDivByZero, s)
		}
		return Arg{Whole: 0, Numerator: parts[0], Denominator: parts[1]}, nil
	case 3:
		if parts[2] == 0 {
			return Arg{}, fmt.Errorf("%w in %q", ErrDivByZero, s)
		}
		return Arg{Whole: parts[0], Numerator: parts[1], Denominator: parts[2]}, nil
	default:
		return Arg{}, fmt.Errorf("%w %q", ErrUnexpected, s)
	}
}

// String renders the stored fields as they are, normalize first for
// canonical output.
func (a Arg) String() string {
	if a.Numerator == 0 {
		return strconv.FormatInt(a.Whole, 10)
	}
	if a.Whole == 0 {
		return fmt.Sprintf("%d/%d", a.Numerator, a.Denominator)
	}
	return fmt.Sprintf("%d_%d/%d", a.Whole, a.Numerator, a.Denominator)
}

// MixedToImproper folds the whole part into the numerator. The sign of a
// negative whole is carried by the combined numerator. It never reduces.
func (a Arg) MixedToImproper() Arg {
	if a.Whole == 0 {
		return a
	}
	num := a.Denominator*abs(a.Whole) + a.Numerator
	if a.Whole < 0 {
		num = -num
	}
	return Arg{Whole: 0, Numerator: num, Denominator: a.Denominator}
}

// ImproperToMixed splits an improper fraction into a whole part and a
// non-negative remainder over a non-negative denominator, reducing first.
// Any other value is returned untouched.
func (a Arg) ImproperToMixed() Arg {
	if a.Whole != 0 || abs(a.Numerator) < abs(a.Denominator) {
		return a
	}
	r := a.Reduce()
	return Arg{
		Whole:       r.Numerator / r.Denominator,
		Numerator:   abs(r.Numerator % r.Denominator),
		Denominator: abs(r.Denominator),
	}
}

// Reduce returns the improper form in lowest terms with a non-negative
// denominator. The denominator must not be 0.
func (a Arg) Reduce() Arg {
	r := a.MixedToImproper()
	g := gcd(abs(r.Numerator), abs(r.Denominator))
	r.Numerator /= g
	r.Denominator /= g
	if r.Denominator < 0 {
		r.Numerator = -r.Numerator
		r.Denominator = -r.Denominator
	}
	return r
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func (a Arg) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Whole       int64  `json:"whole"`
		Numerator   int64  `json:"numerator"`
		Denominator int64  `json:"denominator"`
		Text        string `json:"text"`
	}{a.Whole, a.Numerator, a.Denominator, a.String()})
}
