package folio

import (
	"strings"
	"testing"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// mustPrices decodes a CSV price reference or fails the test.
func mustPrices(t *testing.T, csv string) *PriceTable {
	t.Helper()
	prices, err := DecodePrices(strings.NewReader(csv), PriceFormat{Currency: "USD"})
	if err != nil {
		t.Fatalf("DecodePrices() error = %v", err)
	}
	return prices
}
