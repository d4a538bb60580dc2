package recovery

import "fmt"

// Asset is one row of the holdings table.
type Asset struct {
	ID            string  // coin name, unique within a table
	TotalSpent    Money   // amount invested so far
	CurrentValue  Money   // market value of the position
	Profit        Money   // signed, negative is a loss
	ProfitPercent Percent // signed, same sign as Profit
}

// summary ids mark pre-computed aggregate rows, not real assets.
// "SUM" is the spreadsheet's own total, "TOTAL" the one written by Save.
var summaryIDs = map[string]bool{
	"SUM":   true,
	"TOTAL": true,
}

// IsSummary reports whether id marks an aggregate row.
func IsSummary(id string) bool { return summaryIDs[id] }

// ValidateAssets checks the records the calculator relies on.
//
// Ids must be unique, spend and current value must not be negative and all
// amounts must share one currency, the budget's when it has one, otherwise
// the first one found. Profit and percent signs are trusted as given.
func ValidateAssets(assets []Asset, budget Money) error {
	seen := make(map[string]bool, len(assets))
	pinned := budget.Currency()
	for _, a := range assets {
		if IsSummary(a.ID) {
			continue
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: duplicate asset %q", ErrData, a.ID)
		}
		seen[a.ID] = true
		if a.TotalSpent.IsNegative() {
			return fmt.Errorf("%w: asset %q has a negative total spent %s", ErrData, a.ID, a.TotalSpent)
		}
		if a.CurrentValue.IsNegative() {
			return fmt.Errorf("%w: asset %q has a negative current value %s", ErrData, a.ID, a.CurrentValue)
		}
		for _, m := range []Money{a.TotalSpent, a.CurrentValue, a.Profit} {
			if !compatible(m, Money{cur: pinned}) {
				return fmt.Errorf("%w: asset %q is in %s, expected %s", ErrData, a.ID, m.Currency(), pinned)
			}
			if pinned == "" {
				pinned = m.Currency()
			}
		}
	}
	return nil
}
