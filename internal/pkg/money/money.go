package money

import (
	"fmt"
	"math"
)

// Cents is an exact money amount in 1/100 units. All cart arithmetic runs on
// integers so repeated add/remove/update cycles never drift.
type Cents int64

// FromFloat converts a decimal price (as delivered by the product catalog)
// into cents, rounding half away from zero.
func FromFloat(v float64) Cents {
	return Cents(math.Round(v * 100))
}

func (c Cents) Float() float64 {
	return float64(c) / 100
}

// String renders with 2-digit display rounding, e.g. "19.98".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (c Cents) Mul(n int64) Cents {
	return Cents(int64(c) * n)
}
