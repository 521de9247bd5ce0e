package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/folio/agent"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `folio assist [question]

  Start an interactive session with the AI assistant about the saved portfolio.
  It requires a Gemini API key in GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	logger := NewLogger(zap.WarnLevel)
	session, err := OpenSession(logger, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, logger, agent.NewTrader(), agent.NewAccountant(session))
	if err := a.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the assistant:", err)
		return subcommands.ExitFailure
	}
	if err := a.Run(ctx, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
