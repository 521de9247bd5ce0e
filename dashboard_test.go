package folio

import (
	"strings"
	"testing"
)

func TestNewDashboard(t *testing.T) {
	prices := mustPrices(t, "Symbol,Price\nAAPL,160\nMSFT,290\n")
	p := NewPortfolio()
	p.Add("AAPL", Q(3), USD(450))
	p.Add("MSFT", Q(2), USD(600))

	d := NewDashboard(p, prices, "USD")

	if len(d.Symbols) != 2 || len(d.Holdings) != 2 {
		t.Fatalf("NewDashboard() symbols=%v holdings=%d", d.Symbols, len(d.Holdings))
	}
	if d.PerformanceError != "" || len(d.Performance) != 2 {
		t.Errorf("NewDashboard() performance = %v, %q", d.Performance, d.PerformanceError)
	}
	if !d.TotalValue.Equal(USD(1050)) {
		t.Errorf("NewDashboard() total value = %v, want %v", d.TotalValue, USD(1050))
	}
	if len(d.Composition) != 2 || d.Composition[0].Symbol != "AAPL" {
		t.Errorf("NewDashboard() composition = %v", d.Composition)
	}
}

func TestNewDashboard_Empty(t *testing.T) {
	prices := mustPrices(t, "Symbol,Price\nAAPL,160\n")
	d := NewDashboard(NewPortfolio(), prices, "USD")
	if !d.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true")
	}
	if d.PerformanceError != "" || d.CompositionError != "" {
		t.Errorf("an empty dashboard should not report errors: %q %q", d.PerformanceError, d.CompositionError)
	}
}

func TestNewDashboard_UnknownSymbol(t *testing.T) {
	prices := mustPrices(t, "Symbol,Price\nAAPL,160\n")
	p := NewPortfolio()
	p.Add("AAPL", Q(1), USD(100))
	p.Add("ZZZ", Q(1), USD(100))

	d := NewDashboard(p, prices, "USD")
	if !strings.Contains(d.PerformanceError, "ZZZ") {
		t.Errorf("PerformanceError = %q, want it to name ZZZ", d.PerformanceError)
	}
	// other sections are still computed
	if len(d.Composition) != 2 {
		t.Errorf("Composition = %v, want 2 shares", d.Composition)
	}
}
