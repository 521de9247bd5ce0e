package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// maxRounds bounds the function calls an expert can chain before answering.
const maxRounds = 8

// ErrNoAnswer is returned when an expert stops without any text.
var ErrNoAnswer = errors.New("no answer")

// sender is the part of a chat an expert talks to, *genai.Chat implements it.
type sender interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// Expert is a chat with a model specialized in one part of the user's questions.
//
// An expert can itself be called as a function by another expert, see
// Declaration and Call.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	Library     Library

	chat sender
	log  *zap.Logger
}

// Start opens the expert's chat.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("starting %s: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

func (e *Expert) logger() *zap.Logger {
	if e.log == nil {
		return zap.NewNop()
	}
	return e.log
}

// Respond sends question to the expert and returns its text answer.
//
// Function calls requested by the model are answered from the Library, all the
// calls of a round are sent back together, until the model answers with text.
func (e *Expert) Respond(ctx context.Context, question string) (string, error) {
	if e.chat == nil {
		return "", fmt.Errorf("expert %s is not started", e.Name)
	}
	log := e.logger()
	parts := []*genai.Part{{Text: question}}
	for round := 0; round < maxRounds; round++ {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("%s: %w", e.Name, err)
		}
		text, calls := split(resp)
		if len(calls) == 0 {
			if text == "" {
				return "", fmt.Errorf("%s: %w", e.Name, ErrNoAnswer)
			}
			return text, nil
		}
		if e.Library == nil {
			return "", fmt.Errorf("expert %s cannot answer function calls", e.Name)
		}
		parts = make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			start := time.Now()
			fr := e.Library(ctx, call)
			log.Debug("function call", zap.String("function", call.Name), zap.Duration("elapsed", time.Since(start)), zap.Bool("failed", fr.Response["error"] != nil))
			parts = append(parts, &genai.Part{FunctionResponse: fr})
		}
	}
	return "", fmt.Errorf("%s: still calling functions after %d rounds", e.Name, maxRounds)
}

// split returns the text and the function calls of the first candidate.
func split(resp *genai.GenerateContentResponse) (string, []*genai.FunctionCall) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	var text strings.Builder
	var calls []*genai.FunctionCall
	for _, p := range resp.Candidates[0].Content.Parts {
		switch {
		case p.FunctionCall != nil:
			calls = append(calls, p.FunctionCall)
		case p.Text != "" && !p.Thought:
			text.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(text.String()), calls
}

// Declaration declares the expert as a function taking a question.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {Type: genai.TypeString, Description: "The question for the " + e.Name + "."},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{Type: genai.TypeString, Description: "The answer of the " + e.Name + "."},
	}
}

// Call asks the question found in args.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	question, ok := args["question"].(string)
	if !ok || strings.TrimSpace(question) == "" {
		return errorResponse(id, e.Name, fmt.Errorf("question must be a non empty string, got %T", args["question"]))
	}
	e.logger().Debug("question", zap.String("question", question))
	answer, err := e.Respond(ctx, question)
	if err != nil {
		return errorResponse(id, e.Name, err)
	}
	return outputResponse(id, e.Name, answer)
}
