package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/recovery"
	"github.com/etnz/recovery/renderer"
	"github.com/google/subcommands"
)

// scenariosCmd holds the flags for the 'scenarios' subcommand.
type scenariosCmd struct {
	runFlags
	budgets string
}

func (*scenariosCmd) Name() string     { return "scenarios" }
func (*scenariosCmd) Synopsis() string { return "compare the outcome of several budgets" }
func (*scenariosCmd) Usage() string {
	return `rcv scenarios -b <budget,...> [-x <asset,...>] [-include-positive]

  Computes the plan for each budget and prints the aggregate loss before and
  after investing each of them.
`
}

func (c *scenariosCmd) SetFlags(f *flag.FlagSet) {
	c.runFlags.SetFlags(f)
	f.StringVar(&c.budgets, "b", "", "Comma separated budgets to compare")
}

func (c *scenariosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if strings.TrimSpace(c.budgets) == "" {
		fmt.Fprintln(stderr, "Error: -b is required")
		return subcommands.ExitUsageError
	}

	cfg, closeLog, err := setup()
	defer closeLog()
	if err != nil {
		return fail(err)
	}
	if err := c.apply(cfg); err != nil {
		return fail(err)
	}

	var budgets []recovery.Money
	for _, s := range strings.Split(c.budgets, ",") {
		b, err := parseAmount(s)
		if err != nil {
			return fail(err)
		}
		budgets = append(budgets, recovery.M(b, cfg.Currency))
	}

	assets, err := loadAssets(cfg)
	if err != nil {
		return fail(err)
	}
	scenarios, err := recovery.CompareBudgets(ctx, assets, cfg.Options(), budgets)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ScenariosMarkdown(scenarios))
	return subcommands.ExitSuccess
}
