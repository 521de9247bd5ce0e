package folio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSession_BuySavesPortfolio(t *testing.T) {
	prices := mustPrices(t, "Symbol,Price\nAAPL,160\n")
	file := filepath.Join(t.TempDir(), "portfolio.csv")
	s := NewSession(prices, file, "USD", nil)

	b, err := NewPurchase("AAPL", Q(3), USD(450))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Buy(b); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	if err := s.Buy(b); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}

	saved, err := LoadPortfolio(file, "USD")
	if err != nil {
		t.Fatalf("LoadPortfolio() error = %v", err)
	}
	want := NewPortfolio()
	want.Add("AAPL", Q(6), USD(900))
	if !saved.Equal(want) {
		t.Errorf("saved portfolio differs from %v", want.Symbols())
	}
	if !s.Portfolio().Equal(want) {
		t.Errorf("session portfolio differs from the saved one")
	}
}

func TestSession_Load(t *testing.T) {
	prices := mustPrices(t, "Symbol,Price\nAAPL,160\n")
	file := filepath.Join(t.TempDir(), "portfolio.csv")
	if err := os.WriteFile(file, []byte("Stock,Quantity,Amount\nAAPL,2,300\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewSession(prices, file, "USD", nil)
	if !s.Portfolio().IsEmpty() {
		t.Fatalf("a new session must start empty")
	}
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	h, ok := s.Portfolio().Holding("AAPL")
	if !ok || !h.Quantity.Equal(Q(2)) || !h.Amount.Equal(USD(300)) {
		t.Errorf("Load() holding = %v, %v", h, ok)
	}
}

func TestSession_BuyFailureKeepsPortfolio(t *testing.T) {
	prices := mustPrices(t, "Symbol,Price\nAAPL,160\n")
	// a directory cannot be replaced by a file.
	dir := t.TempDir()
	file := filepath.Join(dir, "portfolio.csv")
	if err := os.Mkdir(file, 0755); err != nil {
		t.Fatal(err)
	}
	s := NewSession(prices, file, "USD", nil)

	b, _ := NewPurchase("AAPL", Q(1), USD(10))
	if err := s.Buy(b); err == nil {
		t.Fatalf("Buy() expected an error")
	}
	if !s.Portfolio().IsEmpty() {
		t.Errorf("a failed Buy() changed the portfolio")
	}
}

func TestSession_InMemory(t *testing.T) {
	prices := mustPrices(t, "Symbol,Price\nAAPL,160\n")
	s := NewSession(prices, "", "USD", nil)
	b, _ := NewPurchase("AAPL", Q(1), USD(100))
	if err := s.Buy(b); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	d := s.Dashboard()
	if len(d.Performance) != 1 || !d.Performance[0].Percent().Equal(60) {
		t.Errorf("Dashboard() performance = %v", d.Performance)
	}
}
