package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

func TestBuyCmd(t *testing.T) {
	dir := t.TempDir()
	prices := filepath.Join(dir, "prices.csv")
	portfolio := filepath.Join(dir, "portfolio.csv")
	if err := os.WriteFile(prices, []byte("Symbol,Currentprice\nAAPL,160\nMSFT,290\n"), 0644); err != nil {
		t.Fatal(err)
	}
	setGlobalFlags(t, "-prices", prices, "-price-column", "Currentprice", "-portfolio", portfolio, "-currency", "USD")

	buy := func(args ...string) subcommands.ExitStatus {
		c := &buyCmd{}
		f := flag.NewFlagSet("buy", flag.ContinueOnError)
		c.SetFlags(f)
		if err := f.Parse(args); err != nil {
			t.Fatalf("invalid buy flags %q: %v", args, err)
		}
		return c.Execute(context.Background(), f)
	}

	if got := buy("-s", "AAPL", "-q", "3", "-a", "450"); got != subcommands.ExitSuccess {
		t.Fatalf("buy AAPL = %v", got)
	}
	if got := buy("-s", "AAPL", "-q", "2", "-a", "300"); got != subcommands.ExitSuccess {
		t.Fatalf("buy AAPL again = %v", got)
	}
	if got := buy("-s", "MSFT", "-q", "0", "-a", "10"); got != subcommands.ExitUsageError {
		t.Errorf("buy 0 MSFT = %v, want usage error", got)
	}

	got, err := os.ReadFile(portfolio)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Stock,Quantity,Amount\nAAPL,5,750\n"; string(got) != want {
		t.Errorf("portfolio file = %q, want %q", got, want)
	}
}

func TestOpenSession_MissingPrices(t *testing.T) {
	setGlobalFlags(t, "-prices", filepath.Join(t.TempDir(), "missing.csv"))
	if _, err := OpenSession(nil, false); err == nil {
		t.Error("OpenSession() succeeded without a price reference")
	}
}
