package agent

import (
	"context"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand how his stock portfolio performs, and to get
			news or information about the stocks he holds.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know about his stock symbols, check the portfolio first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		Very well aware of all the financial products and institutions,
		about the latest news about the different companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a expert in Trading, you can search and find about anything related to
			financial institutions, companies and markets. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAccountant returns the expert reading the user's portfolio from session.
func NewAccountant(session *folio.Session) *Expert {
	lib := DashboardFunctions(session)

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the user's portfolio.
		He knows the holdings, their average cost, their performance against the current prices
		and the composition of the portfolio.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's stock portfolio.
				You know how to use the Tools to extract relevant information about the user's portfolio.
				You are part of a team of experts, yours is everything about the user's portfolio. They might ask
				you questions about the user's portfolio, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's portfolio
				  - symbols and current prices
				  - holdings
				  - performance
				  - composition
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// markdownFunc declares a function without parameters returning a markdown
// document computed by render.
func markdownFunc(name, description, response string, render func() string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: response,
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, render())
		},
	}
}

// DashboardFunctions exposes the dashboard of session as functions.
// Each call reads the current state of the session.
func DashboardFunctions(session *folio.Session) []*Func {
	return []*Func{
		markdownFunc("Symbols",
			"Symbols lists every stock symbol the user can buy, with its current price.",
			"A markdown table of symbols and their current price.",
			func() string { return renderer.SymbolsMarkdown(session.Prices()) },
		),
		markdownFunc("Holdings",
			"Holdings lists the stocks held in the portfolio, with the quantity, the total amount paid and the average cost.",
			"A markdown table of the holdings.",
			func() string { return renderer.HoldingsMarkdown(session.Dashboard()) },
		),
		markdownFunc("Performance",
			`Performance compares the average cost of each holding with its current price.
			It reports the gain and the performance in percent.`,
			"A markdown table of the performance of each holding, or the reason it cannot be computed.",
			func() string { return renderer.PerformanceMarkdown(session.Dashboard()) },
		),
		markdownFunc("Dashboard",
			"Dashboard is the full report: holdings, performance, total invested and the share of each holding in the portfolio.",
			"A markdown document.",
			func() string { return renderer.DashboardMarkdown(session.Dashboard()) },
		),
	}
}
