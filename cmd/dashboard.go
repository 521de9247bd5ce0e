package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

type dashboardCmd struct {
	md   bool
	json bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the full portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `folio dashboard [-md | -json]

  Displays the holdings, their performance and the portfolio composition.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.md, "md", false, "print raw markdown")
	f.BoolVar(&c.json, "json", false, "print the dashboard as JSON")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.md && c.json {
		fmt.Fprintln(os.Stderr, "Error: -md and -json flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	session, err := OpenSession(NewLogger(zap.WarnLevel), true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	d := session.Dashboard()

	switch {
	case c.json:
		b, err := json.Marshal(d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding dashboard: %v\n", err)
			return subcommands.ExitFailure
		}
		os.Stdout.Write(pretty.Pretty(b))
	case c.md:
		fmt.Print(renderer.DashboardMarkdown(d))
	default:
		printMarkdown(renderer.DashboardMarkdown(d))
	}
	return subcommands.ExitSuccess
}
