package folio

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Pricer provides the current price of a symbol.
type Pricer interface {
	PriceOf(symbol string) (Money, error)
}

// PerformanceRecord is the performance of a single holding against its current price.
type PerformanceRecord struct {
	Symbol      string          `json:"symbol"`
	Quantity    Quantity        `json:"quantity"`
	Amount      Money           `json:"amount"`
	AverageCost Money           `json:"averageCost"`
	Current     Money           `json:"current"`
	Ratio       decimal.Decimal `json:"ratio"`   // (current - averageCost) / averageCost
	Defined     bool            `json:"defined"` // false when the average cost is zero
}

// Percent returns the ratio as a percentage. It is 0 when the ratio is undefined.
func (r PerformanceRecord) Percent() Percent {
	if !r.Defined {
		return 0
	}
	return PercentOf(r.Ratio)
}

// PercentString formats the performance, "n/a" when undefined.
func (r PerformanceRecord) PercentString() string {
	if !r.Defined {
		return "n/a"
	}
	return r.Percent().SignedString()
}

// Gain returns the market value minus the amount paid.
func (r PerformanceRecord) Gain() Money {
	return r.Current.Mul(r.Quantity).Sub(r.Amount)
}

// Calculate computes the performance of each holding in p, in portfolio order.
//
// A holding bought for free (zero amount) has no meaningful performance: its
// record is returned with Defined set to false.
// It fails if a symbol cannot be priced, or is priced in another currency than
// the portfolio's. The error is a *SymbolError.
func Calculate(p *Portfolio, prices Pricer) ([]PerformanceRecord, error) {
	records := make([]PerformanceRecord, 0, p.Len())
	for h := range p.Holdings() {
		avg, ok := h.AverageCost()
		if !ok {
			return nil, &SymbolError{Symbol: h.Symbol, Err: fmt.Errorf("%w: holding has %s shares", ErrInvalidQuantity, h.Quantity)}
		}
		current, err := prices.PriceOf(h.Symbol)
		if err != nil {
			var se *SymbolError
			if !errors.As(err, &se) {
				err = &SymbolError{Symbol: h.Symbol, Err: err}
			}
			return nil, err
		}
		if !sameCurrency(current, h.Amount) {
			return nil, &SymbolError{Symbol: h.Symbol, Err: fmt.Errorf("%w: priced in %s, paid in %s", ErrCurrencyMismatch, current.Currency(), h.Amount.Currency())}
		}
		r := PerformanceRecord{
			Symbol:      h.Symbol,
			Quantity:    h.Quantity,
			Amount:      h.Amount,
			AverageCost: avg,
			Current:     current,
		}
		if !h.Amount.IsZero() {
			// Same as (current-avg)/avg without rounding avg first.
			value := current.Decimal().Mul(h.Quantity.Decimal())
			r.Ratio = value.Sub(h.Amount.Decimal()).Div(h.Amount.Decimal())
			r.Defined = true
		}
		records = append(records, r)
	}
	return records, nil
}

// sameCurrency reports whether a and b can be combined, a blank currency
// matches any other.
func sameCurrency(a, b Money) bool {
	return a.Currency() == "" || b.Currency() == "" || a.Currency() == b.Currency()
}

// PortfolioValue returns the total amount invested in p.
func PortfolioValue(p *Portfolio) Money {
	var total Money
	for h := range p.Holdings() {
		total = total.Add(h.Amount)
	}
	return total
}

// Composition returns each holding's share of the portfolio value, in percent.
// It fails with ErrZeroValue if nothing was invested.
func Composition(p *Portfolio) (map[string]Percent, error) {
	total := PortfolioValue(p)
	if total.IsZero() {
		return nil, ErrZeroValue
	}
	shares := make(map[string]Percent, p.Len())
	for h := range p.Holdings() {
		shares[h.Symbol] = PercentOf(h.Amount.Decimal().Div(total.Decimal()))
	}
	return shares, nil
}
