package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/folio/renderer"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// responder answers the user's questions, the facilitator in production.
type responder interface {
	Respond(ctx context.Context, question string) (string, error)
}

// Agent runs the conversation between the user and a team of experts led by
// a facilitator.
type Agent struct {
	out     io.Writer
	in      *bufio.Scanner
	log     *zap.Logger
	experts []*Expert
	lead    *Expert
	ask     responder
}

// New returns an agent writing answers to out and reading questions from in,
// one per line.
func New(out io.Writer, in io.Reader, log *zap.Logger, experts ...*Expert) *Agent {
	if log == nil {
		log = zap.NewNop()
	}
	lead := newFacilitator(experts...)
	for _, e := range append(slices.Clone(experts), lead) {
		e.log = log.With(zap.String("expert", e.Name))
	}
	return &Agent{
		out:     out,
		in:      bufio.NewScanner(in),
		log:     log,
		experts: experts,
		lead:    lead,
		ask:     lead,
	}
}

// Start opens a chat for every expert and for the facilitator.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range append(slices.Clone(a.experts), a.lead) {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return nil
}

const prompt = "assist> "

// isQuit reports whether the user asked to leave.
func isQuit(input string) bool {
	switch strings.ToLower(input) {
	case "bye", "exit", "quit":
		return true
	}
	return false
}

// Run answers questions first, then the lines read from the input until it
// ends, the user says bye or ctx is done.
//
// A failed question is reported and the conversation goes on.
func (a *Agent) Run(ctx context.Context, questions ...string) error {
	fmt.Fprintln(a.out, "Welcome to folio assist. Type 'bye' to exit.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(a.out, prompt)
		var input string
		if len(questions) > 0 {
			input, questions = strings.TrimSpace(questions[0]), questions[1:]
			fmt.Fprintln(a.out, input)
		} else {
			if !a.in.Scan() {
				fmt.Fprintln(a.out)
				return a.in.Err()
			}
			input = strings.TrimSpace(a.in.Text())
		}
		switch {
		case input == "":
			continue
		case isQuit(input):
			return nil
		}

		a.log.Debug("question", zap.String("question", input))
		answer, err := a.ask.Respond(ctx, input)
		if err != nil {
			a.log.Warn("question failed", zap.String("question", input), zap.Error(err))
			fmt.Fprintf(a.out, "Sorry, I could not answer: %v\n", err)
			continue
		}
		renderer.PrintMarkdown(a.out, answer)
	}
}
