package kernel

import (
	"github.com/shopspring/decimal"
)

// Amount is a monetary value in the currency of the order. It serializes to a
// bare JSON number, which is what the carrier API expects.
type Amount struct {
	value decimal.Decimal
}

// NewAmountFromString parses a decimal string like "165.90".
func NewAmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d}, nil
}

// MustAmount is NewAmountFromString for literals; it panics on malformed input.
func MustAmount(s string) Amount {
	a, err := NewAmountFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Between reports whether a lies in [lower, upper] inclusive.
func (a Amount) Between(lower, upper Amount) bool {
	return a.value.GreaterThanOrEqual(lower.value) && a.value.LessThanOrEqual(upper.value)
}

func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) String() string {
	return a.value.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.value.UnmarshalJSON(b)
}
