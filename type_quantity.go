package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// maxDigits bounds the integer digits accepted by parseDecimal, far beyond any
// share count or price while keeping arithmetic on the coefficient cheap.
const maxDigits = 15

// maxExponent bounds the scientific exponent accepted by parseDecimal.
const maxExponent = 18

// parseDecimal parses s as a decimal number of a sane magnitude.
// "1e50000000" is a valid decimal but comparing it allocates a 50M digit integer.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q is not a number", s)
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Decimal{}, fmt.Errorf("%q is out of range", s)
	}
	if i := d.Abs().Truncate(0); i.NumDigits()+int(i.Exponent()) > maxDigits {
		return decimal.Decimal{}, fmt.Errorf("%q is out of range", s)
	}
	return d, nil
}

// Quantity is a number of shares. Holdings only ever contain whole shares.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a share count, it must be a whole number.
func ParseQuantity(s string) (Quantity, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %w", ErrInvalidQuantity, err)
	}
	q := Quantity{value: d}
	if !q.IsInteger() {
		return Quantity{}, fmt.Errorf("%w: %q is not a whole number of shares", ErrInvalidQuantity, s)
	}
	return q, nil
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsInteger() bool             { return q.value.IsInteger() }
func (q Quantity) Decimal() decimal.Decimal    { return q.value }
func (q Quantity) String() string              { return q.value.String() }

// MarshalJSON writes the quantity as a JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.value.String()), nil
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	return q.value.UnmarshalJSON(b)
}
