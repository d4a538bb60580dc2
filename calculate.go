package recovery

import (
	"fmt"
	"strings"
)

// Options configures a run of the calculator.
type Options struct {
	Budget             Money    // amount to invest, must not be negative
	Excluded           []string // asset ids never invested in
	ExcludeNonNegative bool     // only invest in assets at a loss
}

// Validate checks the options and returns an ErrInvalidConfiguration error.
func (o Options) Validate() error {
	if o.Budget.IsNegative() {
		return fmt.Errorf("%w: budget %s is negative", ErrInvalidConfiguration, o.Budget)
	}
	for _, id := range o.Excluded {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: blank id in the excluded assets %q", ErrInvalidConfiguration, o.Excluded)
		}
	}
	return nil
}

// Calculate runs the whole pipeline on a holdings table: it validates the
// inputs, selects the eligible assets, allocates the budget and builds the
// report.
//
// Having no eligible asset is not an error, the report then shows every
// asset with no investment.
func Calculate(assets []Asset, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateAssets(assets, opts.Budget); err != nil {
		return nil, err
	}

	eligible := FilterEligible(assets, opts.Excluded, opts.ExcludeNonNegative)
	allocations, err := Allocate(eligible, opts.Budget)
	if err != nil {
		return nil, err
	}

	r := BuildReport(assets, allocations)
	r.Budget = opts.Budget

	// aggregate over the same subset as the totals.
	subset := eligible
	if len(subset) == 0 {
		subset = displayed(assets)
	}
	var spent Money
	for _, a := range subset {
		spent = spent.Add(a.TotalSpent)
	}
	if spent.IsPositive() {
		r.LossBefore = r.Totals.Profit.PercentOf(spent)
		r.LossAfter = r.Totals.Profit.PercentOf(spent.Add(r.Totals.Investment))
	}
	return r, nil
}
