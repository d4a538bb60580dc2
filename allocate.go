package recovery

import "fmt"

// Allocation is the recommendation for one asset.
type Allocation struct {
	ID               string
	Profit           Money   // copied from the asset
	ProfitPercent    Percent // copied from the asset, the "old" loss percentage
	Investment       Money   // share of the budget, zero for ineligible assets
	NewProfitPercent Percent // loss percentage once Investment is added to the cost basis
	Improvement      Percent // |ProfitPercent| - |NewProfitPercent|, points moved towards zero
	Eligible         bool    // the asset took part in the allocation
}

// unallocated returns the row of an asset that receives nothing.
func unallocated(a Asset, cur string) Allocation {
	return Allocation{
		ID:               a.ID,
		Profit:           a.Profit,
		ProfitPercent:    a.ProfitPercent,
		Investment:       Money{cur: cur},
		NewProfitPercent: a.ProfitPercent,
	}
}

// Allocate distributes 'budget' across the eligible assets in proportion to
// the magnitude of their loss in currency.
//
// Each investment is added to the asset's cost basis at current price: the
// absolute loss is unchanged and the loss percentage is diluted to
// Profit/(TotalSpent+Investment). When the eligible assets carry no loss at
// all nothing is invested. The whole budget is allocated otherwise.
func Allocate(eligible []Asset, budget Money) ([]Allocation, error) {
	if budget.IsNegative() {
		return nil, fmt.Errorf("%w: budget %s is negative", ErrInvalidConfiguration, budget)
	}

	var totalWeight Money
	pinned := budget.Currency()
	for _, a := range eligible {
		if a.TotalSpent.IsNegative() {
			return nil, fmt.Errorf("%w: asset %q has a negative total spent %s", ErrData, a.ID, a.TotalSpent)
		}
		for _, m := range []Money{a.TotalSpent, a.Profit} {
			if !compatible(m, Money{cur: pinned}) {
				return nil, fmt.Errorf("%w: asset %q is in %s, expected %s", ErrData, a.ID, m.Currency(), pinned)
			}
			if pinned == "" {
				pinned = m.Currency()
			}
		}
		totalWeight = totalWeight.Add(a.Profit.Abs())
	}

	allocations := make([]Allocation, 0, len(eligible))
	for _, a := range eligible {
		alloc := unallocated(a, budget.Currency())
		alloc.Eligible = true

		if !totalWeight.IsZero() {
			alloc.Investment = budget.Prorate(a.Profit.Abs(), totalWeight)
		}
		if !alloc.Investment.IsZero() {
			basis := a.TotalSpent.Add(alloc.Investment)
			if basis.IsPositive() {
				alloc.NewProfitPercent = a.Profit.PercentOf(basis)
			}
		}
		alloc.Improvement = alloc.ProfitPercent.Abs() - alloc.NewProfitPercent.Abs()
		allocations = append(allocations, alloc)
	}
	return allocations, nil
}
