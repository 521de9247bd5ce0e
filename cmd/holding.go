package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the holdings of the saved portfolio" }
func (*holdingCmd) Usage() string {
	return `folio holding

  Displays the quantity, amount paid and average cost of each holding.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := OpenSession(NewLogger(zap.WarnLevel), true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingsMarkdown(session.Dashboard()))
	return subcommands.ExitSuccess
}
