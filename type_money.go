package folio

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal amount in the given currency.
func ParseMoney(s, currency string) (Money, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	return Money{value: d, cur: currency}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	if cur.Template == "" {
		// unknown to go-money, keep the code visible.
		return m.value.StringFixed(2) + " " + m.cur
	}
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Simple wrapper around decimal.Decimal

func (m Money) Currency() string              { return m.cur }
func (m Money) Decimal() decimal.Decimal      { return m.value }
func (m Money) Equal(n Money) bool            { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                  { return m.value.IsZero() }
func (m Money) IsPositive() bool              { return m.value.IsPositive() }
func (m Money) IsNegative() bool              { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool         { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool      { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                    { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money          { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money          { return Money{value: m.value.Div(q.value), cur: m.cur} }
func (m Money) WithCurrency(cur string) Money { return Money{value: m.value, cur: cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	type jmoney struct {
		Currency string          `json:"currency,omitempty"`
		Amount   decimal.Decimal `json:"amount"`
	}
	return json.Marshal(jmoney{Currency: m.cur, Amount: m.value})
}
