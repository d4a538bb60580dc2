package renderer

import "github.com/etnz/recovery"

// Column titles shared by the markdown and the terminal tables.
var (
	reportHeader   = []string{"#", "Cryptocurrency", "Current Loss", "Investment", "Old % Loss", "New % Loss", "Improvement %"}
	scenarioHeader = []string{"Budget", "Invested", "Assets", "Loss Before", "Loss After", "Best Improvement"}
)

// cells formats a report row. Totals rows have no index nor percentages.
func cells(index string, a recovery.Allocation) []string {
	return []string{
		index,
		a.ID,
		a.Profit.Round().String(),
		a.Investment.Round().String(),
		a.ProfitPercent.String(),
		a.NewProfitPercent.String(),
		a.Improvement.String(),
	}
}

func totalCells(t recovery.Totals) []string {
	return []string{"", "TOTAL", t.Profit.Round().String(), t.Investment.Round().String(), "", "", ""}
}

// bestImprovement returns the allocation with the largest improvement.
func bestImprovement(r *recovery.Report) (recovery.Allocation, bool) {
	var best recovery.Allocation
	found := false
	for _, row := range r.Rows {
		if !row.Eligible {
			continue
		}
		if !found || row.Improvement > best.Improvement {
			best, found = row, true
		}
	}
	return best, found
}
