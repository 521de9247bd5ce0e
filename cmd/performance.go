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

type performanceCmd struct{}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display the performance of each holding" }
func (*performanceCmd) Usage() string {
	return `folio performance

  Displays the average cost, current price, gain and performance of each holding.
  It fails if a held symbol is missing from the price reference.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := OpenSession(NewLogger(zap.WarnLevel), true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	d := session.Dashboard()
	printMarkdown(renderer.PerformanceMarkdown(d))
	if d.PerformanceError != "" {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
