// Package cmd implements the folio command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment variables holding the default value of the global flags.
const (
	EnvPrices      = "FOLIO_PRICES"
	EnvPriceColumn = "FOLIO_PRICE_COLUMN"
	EnvPricesPath  = "FOLIO_PRICES_PATH"
	EnvPortfolio   = "FOLIO_PORTFOLIO"
	EnvCurrency    = "FOLIO_CURRENCY"
	EnvVerbose     = "FOLIO_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	pricesFile    *string
	priceColumn   *string
	pricesPath    *string
	portfolioFile *string
	currency      *string
	verbose       *bool
)

// commands lists the subcommands and their group.
var commands = []struct {
	cmd   subcommands.Command
	group string
}{
	{&buyCmd{}, "portfolio"},
	{&holdingCmd{}, "reports"},
	{&performanceCmd{}, "reports"},
	{&dashboardCmd{}, "reports"},
	{&symbolsCmd{}, "reports"},
	{&serveCmd{}, "server"},
	{&assistCmd{}, "assistant"},
	{&topicCmd{}, "documentation"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, sc := range commands {
		c.Register(sc.cmd, sc.group)
	}
}

// SetFlags declares the global flags on f.
//
// Default values are read from the environment, so any .env file must be
// loaded before.
func SetFlags(f *flag.FlagSet) {
	pricesFile = f.String("prices", getenv(EnvPrices, "prices.csv"), "Path to the price reference file (CSV, or JSON with -prices-path)")
	priceColumn = f.String("price-column", getenv(EnvPriceColumn, folio.DefaultPriceColumn), "Name of the price column in the price reference")
	pricesPath = f.String("prices-path", getenv(EnvPricesPath, "$"), "jsonpath to the array of price rows in a JSON price reference")
	portfolioFile = f.String("portfolio", getenv(EnvPortfolio, "portfolio.csv"), "Path to the portfolio file")
	currency = f.String("currency", getenv(EnvCurrency, "USD"), "Currency of prices and amounts")
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	verbose = f.Bool("v", v, "verbose logging")
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// NewLogger returns the application logger, logging from level unless in verbose mode.
func NewLogger(level zapcore.Level) *zap.Logger {
	if *verbose {
		return zap.Must(zap.NewDevelopment())
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return zap.Must(cfg.Build())
}

// LoadPrices reads the price reference designated by the global flags.
func LoadPrices() (*folio.PriceTable, error) {
	return folio.LoadPrices(*pricesFile, folio.PriceFormat{
		PriceColumn: *priceColumn,
		Currency:    *currency,
		Path:        *pricesPath,
	})
}

// OpenSession starts a session on the price reference and the portfolio
// designated by the global flags. If load is true the saved portfolio is loaded.
func OpenSession(logger *zap.Logger, load bool) (*folio.Session, error) {
	prices, err := LoadPrices()
	if err != nil {
		return nil, fmt.Errorf("could not load price reference: %w", err)
	}
	s := folio.NewSession(prices, *portfolioFile, *currency, logger)
	if load {
		if err := s.Load(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// printMarkdown prints markdown to the terminal.
func printMarkdown(md string) { renderer.PrintMarkdown(os.Stdout, md) }
