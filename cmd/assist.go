package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/recovery/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	runFlags
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "discuss the recovery plan with an AI assistant" }
func (*assistCmd) Usage() string {
	return `rcv assist [-b <budget>] [-x <asset,...>] [<question>]

  Starts an interactive session with the AI assistant. It can read the
  holdings and simulate budgets. Requires GEMINI_API_KEY.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.runFlags.SetFlags(f)
	f.StringVar(&c.budget, "b", "", "Budget to discuss, overrides AVAILABLE_BUDGET")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, closeLog, err := setup()
	defer closeLog()
	if err != nil {
		return fail(err)
	}
	if err := c.apply(cfg); err != nil {
		return fail(err)
	}
	assets, err := loadAssets(cfg)
	if err != nil {
		return fail(err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}

	p := &agent.Portfolio{Assets: assets, Options: cfg.Options()}
	a := agent.New(stdout, stdin, agent.NewAdvisor(p), agent.NewResearcher())
	a.Print = printMarkdownTo
	if err := a.Start(ctx, client); err != nil {
		return fail(err)
	}
	if err := a.Run(ctx, strings.Join(f.Args(), " ")); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
