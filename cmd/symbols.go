package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type symbolsCmd struct{}

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "list the symbols of the price reference" }
func (*symbolsCmd) Usage() string {
	return `folio symbols

  Lists the symbols and current prices of the price reference, in file order.
`
}

func (c *symbolsCmd) SetFlags(f *flag.FlagSet) {}

func (c *symbolsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prices, err := LoadPrices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading price reference: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SymbolsMarkdown(prices))
	return subcommands.ExitSuccess
}
