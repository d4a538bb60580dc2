package recovery

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Scenario is the report obtained for one candidate budget.
type Scenario struct {
	Budget Money
	Report *Report
}

// CompareBudgets runs the calculator once per budget and returns the
// scenarios in the order of 'budgets'. opts.Budget is ignored.
//
// Runs are independent and execute concurrently. The first failure cancels
// the remaining ones and is returned.
func CompareBudgets(ctx context.Context, assets []Asset, opts Options, budgets []Money) ([]Scenario, error) {
	scenarios := make([]Scenario, len(budgets))
	g, gctx := errgroup.WithContext(ctx)
	for i, budget := range budgets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o := opts
			o.Budget = budget
			r, err := Calculate(assets, o)
			if err != nil {
				return err
			}
			scenarios[i] = Scenario{Budget: budget, Report: r}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scenarios, nil
}
