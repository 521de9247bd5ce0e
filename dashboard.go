package folio

import (
	"time"
)

// Dashboard is everything the dashboard shows, computed from a portfolio and
// a price reference.
//
// A section that cannot be computed carries an error message instead of its
// content, other sections are still filled.
type Dashboard struct {
	Time     time.Time `json:"time"` // Generation time
	Currency string    `json:"currency"`
	Symbols  []string  `json:"symbols"` // selectable symbols, in price reference order

	Holdings []Holding `json:"holdings"`

	Performance      []PerformanceRecord `json:"performance"`
	PerformanceError string              `json:"performanceError,omitempty"`

	TotalValue       Money   `json:"totalValue"`
	Composition      []Share `json:"composition"`
	CompositionError string  `json:"compositionError,omitempty"`
}

// Share is a holding's part of the total invested amount.
type Share struct {
	Symbol  string  `json:"symbol"`
	Amount  Money   `json:"amount"`
	Percent Percent `json:"percent"`
}

// IsEmpty reports whether the dashboard has no holding to show.
func (d *Dashboard) IsEmpty() bool { return len(d.Holdings) == 0 }

// NewDashboard computes the dashboard of p.
func NewDashboard(p *Portfolio, prices *PriceTable, currency string) *Dashboard {
	d := &Dashboard{
		Time:     time.Now(),
		Currency: currency,
		Symbols:  prices.Symbols(),
		Holdings: make([]Holding, 0, p.Len()),
	}
	for h := range p.Holdings() {
		d.Holdings = append(d.Holdings, h)
	}
	if p.IsEmpty() {
		return d
	}

	perf, err := Calculate(p, prices)
	if err != nil {
		d.PerformanceError = err.Error()
	} else {
		d.Performance = perf
	}

	d.TotalValue = PortfolioValue(p)
	composition, err := Composition(p)
	if err != nil {
		d.CompositionError = err.Error()
		return d
	}
	for h := range p.Holdings() {
		d.Composition = append(d.Composition, Share{
			Symbol:  h.Symbol,
			Amount:  h.Amount,
			Percent: composition[h.Symbol],
		})
	}
	return d
}
