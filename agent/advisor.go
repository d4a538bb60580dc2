package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/recovery"
	"github.com/etnz/recovery/docs"
	"github.com/etnz/recovery/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert leading the conversation, it can ask
// the other experts.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user holds crypto assets, some of them at a loss, and wants to invest a budget
			to bring these losses closer to zero. The recovery plan is computed by rcv, never
			compute it yourself: ask the Advisor.

			Devise a plan of questions to ask to each expert and come up with the best response
			to the user's request. Always make clear that this is not financial advice.
			`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded on Google Search, for news about
// the assets.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is a market researcher, aware of the crypto currencies, their projects and
		the latest news about them. Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a researcher of the crypto currency market. You leverage Google Search to
			ground your assertions, and you know how to relate the latest news to the user's request.
			`}}},
		},
	}
}

// Portfolio is what the Advisor works on: the holdings and the current
// settings of the calculator.
type Portfolio struct {
	Assets  []recovery.Asset
	Options recovery.Options
}

// NewAdvisor returns the expert running the calculator on 'p'.
func NewAdvisor(p *Portfolio) *Expert {
	lib := p.Functions()
	return &Expert{
		Name: "Advisor",
		Description: `This is the Advisor. It reads the user's holdings and runs the recovery
		calculator: for a budget it tells how much to invest in each asset and how much each
		loss percentage improves.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are in charge of the user's holdings and of the recovery calculator.
			Use the Tools to list the assets and to simulate budgets, never compute an allocation yourself.
			Here is how the calculator works:

			` + allocationTopic() + `
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func allocationTopic() string {
	s, err := docs.Topic("allocation")
	if err != nil {
		panic(err) // embedded
	}
	return s
}

// Functions returns the tools working on the portfolio.
func (p *Portfolio) Functions() []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "list_assets",
				Description: "Lists the user's holdings: amount spent, current value and profit of each asset.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of the holdings.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				return renderer.AssetsMarkdown(p.Assets), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "simulate_budget",
				Description: "Computes the recovery plan for a budget: the investment in each asset and the resulting loss percentages.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"budget": {
							Type:        genai.TypeNumber,
							Description: "Amount to invest, in the currency of the holdings. Defaults to the configured budget.",
						},
						"excluded": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: "Names of the assets not to invest in. Defaults to the configured exclusions.",
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The recovery plan as a markdown document.",
				},
			},
			Func: p.simulate,
		},
	}
}

func (p *Portfolio) simulate(ctx context.Context, args map[string]any) (string, error) {
	opts := p.Options
	if v, ok := args["budget"]; ok {
		budget, err := number(v)
		if err != nil {
			return "", fmt.Errorf("argument 'budget': %w", err)
		}
		opts.Budget = recovery.M(budget, opts.Budget.Currency())
	}
	if v, ok := args["excluded"]; ok {
		list, ok := v.([]any)
		if !ok {
			return "", fmt.Errorf("argument 'excluded' is not a list but %T", v)
		}
		opts.Excluded = make([]string, 0, len(list))
		for _, item := range list {
			opts.Excluded = append(opts.Excluded, strings.TrimSpace(fmt.Sprint(item)))
		}
	}
	r, err := recovery.Calculate(p.Assets, opts)
	if err != nil {
		return "", err
	}
	return renderer.ReportMarkdown(r), nil
}

// number reads a JSON number, or a string holding one.
func number(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	}
	return decimal.Decimal{}, fmt.Errorf("not a number but %T", v)
}
