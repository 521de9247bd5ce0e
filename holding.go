package folio

import (
	"fmt"
	"iter"
	"strings"
)

// Holding is the aggregated position in one symbol.
type Holding struct {
	Symbol   string   `json:"symbol"`
	Quantity Quantity `json:"quantity"` // total shares bought
	Amount   Money    `json:"amount"`   // total cost paid
}

// AverageCost returns the cost basis per share. ok is false if there is no share.
func (h Holding) AverageCost() (avg Money, ok bool) {
	if !h.Quantity.IsPositive() {
		return Money{}, false
	}
	return h.Amount.Div(h.Quantity), true
}

func (h Holding) String() string {
	return fmt.Sprintf("Stock: %s, Quantity: %s, Amount: %s", h.Symbol, h.Quantity, h.Amount)
}

// Portfolio maps symbols to their Holding.
//
// Holdings are iterated in the order their symbol was first added.
type Portfolio struct {
	symbols  []string
	holdings map[string]*Holding
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{holdings: make(map[string]*Holding)}
}

// Add records a purchase of quantity shares of symbol for amount.
//
// If symbol is already held, its quantity and amount are incremented,
// otherwise a new holding is created with those exact values.
// Values are not checked here, see NewPurchase.
func (p *Portfolio) Add(symbol string, quantity Quantity, amount Money) {
	if h, exists := p.holdings[symbol]; exists {
		h.Quantity = h.Quantity.Add(quantity)
		h.Amount = h.Amount.Add(amount)
		return
	}
	p.symbols = append(p.symbols, symbol)
	p.holdings[symbol] = &Holding{Symbol: symbol, Quantity: quantity, Amount: amount}
}

// Holding returns the holding for symbol.
func (p *Portfolio) Holding(symbol string) (Holding, bool) {
	h, ok := p.holdings[symbol]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Holdings iterates over copies of all holdings.
func (p *Portfolio) Holdings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		for _, s := range p.symbols {
			if !yield(*p.holdings[s]) {
				return
			}
		}
	}
}

// Symbols returns the held symbols in insertion order.
func (p *Portfolio) Symbols() []string { return append([]string(nil), p.symbols...) }

func (p *Portfolio) Len() int      { return len(p.symbols) }
func (p *Portfolio) IsEmpty() bool { return len(p.symbols) == 0 }

// Clone returns a deep copy of p.
func (p *Portfolio) Clone() *Portfolio {
	c := NewPortfolio()
	for h := range p.Holdings() {
		c.Add(h.Symbol, h.Quantity, h.Amount)
	}
	return c
}

// Equal reports whether both portfolios hold the same symbols with the same
// quantities and amounts. Order is not significant.
func (p *Portfolio) Equal(q *Portfolio) bool {
	if p.Len() != q.Len() {
		return false
	}
	for h := range p.Holdings() {
		o, ok := q.Holding(h.Symbol)
		if !ok || !o.Quantity.Equal(h.Quantity) || !o.Amount.Equal(h.Amount) {
			return false
		}
	}
	return true
}

// Purchase is a validated request to add shares to a portfolio.
type Purchase struct {
	Symbol   string
	Quantity Quantity
	Amount   Money
}

// NewPurchase validates user input: symbol must not be empty, quantity must
// be a whole number >= 1 and amount must not be negative.
func NewPurchase(symbol string, quantity Quantity, amount Money) (Purchase, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Purchase{}, fmt.Errorf("%w: a symbol is required", ErrInvalidSymbol)
	}
	if !quantity.IsInteger() || quantity.LessThan(Q(1)) {
		return Purchase{}, fmt.Errorf("%w: %s, must be a whole number of at least 1", ErrInvalidQuantity, quantity)
	}
	if amount.IsNegative() {
		return Purchase{}, fmt.Errorf("%w: %s, must not be negative", ErrInvalidAmount, amount)
	}
	return Purchase{Symbol: symbol, Quantity: quantity, Amount: amount}, nil
}

// ParsePurchase validates raw text input, as typed in a form or on the command line.
func ParsePurchase(symbol, quantity, amount, currency string) (Purchase, error) {
	q, err := ParseQuantity(strings.TrimSpace(quantity))
	if err != nil {
		return Purchase{}, err
	}
	a := strings.TrimSpace(amount)
	if a == "" {
		a = "0"
	}
	m, err := ParseMoney(a, currency)
	if err != nil {
		return Purchase{}, err
	}
	return NewPurchase(symbol, q, m)
}

// Apply adds the purchase to p.
func (b Purchase) Apply(p *Portfolio) { p.Add(b.Symbol, b.Quantity, b.Amount) }

func (b Purchase) String() string {
	return fmt.Sprintf("%s shares of %s", b.Quantity, b.Symbol)
}
