package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type buyCmd struct {
	symbol   string
	quantity string
	amount   string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of shares" }
func (*buyCmd) Usage() string {
	return `folio buy -s <symbol> -q <quantity> [-a <amount>]

  Adds the purchase to the saved portfolio. The amount is the total cost paid,
  the quantity a whole number of shares.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol")
	f.StringVar(&c.quantity, "q", "1", "Number of shares")
	f.StringVar(&c.amount, "a", "0", "Total amount paid")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := folio.ParsePurchase(c.symbol, c.quantity, c.amount, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	session, err := OpenSession(NewLogger(zap.WarnLevel), true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, known := session.Prices().Lookup(b.Symbol); !known {
		fmt.Fprintf(os.Stderr, "Warning: %q is not in the price reference, its performance cannot be calculated.\n", b.Symbol)
	}
	if err := session.Buy(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s have been added to the portfolio!\n", b)
	return subcommands.ExitSuccess
}
