package recovery

import "slices"

// Totals is the aggregate row appended to a report.
//
// Percentages have no meaningful total so it has none.
type Totals struct {
	Profit     Money
	Investment Money
}

// Report is the outcome of a run: one row per asset followed by totals.
type Report struct {
	Rows   []Allocation
	Totals Totals

	Budget     Money   // budget the report was computed for
	Eligible   int     // number of assets that took part in the allocation
	LossBefore Percent // aggregate loss percentage before investing
	LossAfter  Percent // aggregate loss percentage after investing the budget
}

// BuildReport merges 'allocations' into the full list of assets.
//
// Assets without an allocation keep their loss percentage and receive no
// investment. Rows are sorted by profit, worst loss first, when there are
// allocations and best first when there are none. Totals are computed over
// the allocations, or over all rows when there are none.
func BuildReport(assets []Asset, allocations []Allocation) *Report {
	byID := make(map[string]Allocation, len(allocations))
	cur := ""
	for _, a := range allocations {
		byID[a.ID] = a
		if cur == "" {
			cur = a.Investment.Currency()
		}
	}

	rows := make([]Allocation, 0, len(assets))
	for _, a := range displayed(assets) {
		if alloc, ok := byID[a.ID]; ok {
			rows = append(rows, alloc)
			continue
		}
		c := cur
		if c == "" {
			c = a.Profit.Currency()
		}
		rows = append(rows, unallocated(a, c))
	}

	r := &Report{Rows: rows, Eligible: len(allocations)}
	if len(allocations) > 0 {
		slices.SortStableFunc(rows, func(a, b Allocation) int { return a.Profit.Cmp(b.Profit) })
		r.Totals = totals(allocations)
	} else {
		slices.SortStableFunc(rows, func(a, b Allocation) int { return b.Profit.Cmp(a.Profit) })
		r.Totals = totals(rows)
	}
	return r
}

func totals(rows []Allocation) Totals {
	var t Totals
	for _, r := range rows {
		t.Profit = t.Profit.Add(r.Profit)
		t.Investment = t.Investment.Add(r.Investment)
	}
	return t
}
