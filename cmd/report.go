package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/recovery"
	"github.com/etnz/recovery/renderer"
	"github.com/etnz/recovery/sheet"
	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	runFlags
	output string
	noSave bool
	color  bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute how to spread the budget over the assets at a loss" }
func (*reportCmd) Usage() string {
	return `rcv report [-b <budget>] [-x <asset,...>] [-include-positive] [-o <file>] [-no-save] [-color]

  Reads the holdings, allocates the budget to the assets at a loss in
  proportion to their loss, prints the plan and saves it.
  See 'rcv topic allocation'.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.runFlags.SetFlags(f)
	f.StringVar(&c.budget, "b", "", "Budget to invest, overrides AVAILABLE_BUDGET")
	f.StringVar(&c.output, "o", "", "Results file (.xlsx or .csv), overrides OUTPUT_FILE")
	f.BoolVar(&c.noSave, "no-save", false, "Do not write the results file")
	f.BoolVar(&c.color, "color", false, "Print a colored table instead of markdown")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start := time.Now()
	status := color.New(color.FgGreen)
	status.Fprintf(stderr, "Started at %s\n", start.Format(time.DateTime))

	cfg, closeLog, err := setup()
	defer closeLog()
	if err != nil {
		return fail(err)
	}
	if err := c.apply(cfg); err != nil {
		return fail(err)
	}
	override(&cfg.OutputFile, c.output)

	assets, err := loadAssets(cfg)
	if err != nil {
		return fail(err)
	}
	r, err := recovery.Calculate(assets, cfg.Options())
	if err != nil {
		return fail(err)
	}
	log.Info().Int("assets", len(r.Rows)).Int("eligible", r.Eligible).Str("budget", r.Budget.String()).Msg("plan computed")

	if c.color {
		fmt.Fprintln(stdout, renderer.ReportTable(r, true))
	} else {
		printMarkdown(renderer.ReportMarkdown(r))
	}

	if !c.noSave {
		if err := sheet.Save(cfg.OutputFile, r); err != nil {
			return fail(err)
		}
		log.Info().Str("file", cfg.OutputFile).Msg("results saved")
		status.Fprintf(stderr, "Results saved to %s\n", cfg.OutputFile)
	}

	end := time.Now()
	status.Fprintf(stderr, "Finished at %s (%s)\n", end.Format(time.DateTime), end.Sub(start).Round(time.Millisecond))
	return subcommands.ExitSuccess
}
