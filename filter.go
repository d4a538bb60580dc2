package recovery

// FilterEligible returns the assets that take part in the allocation, in their original order.
//
// Summary rows are always dropped, then the assets listed in 'excluded'
// (exact, case sensitive match), then, if excludeNonNegative is set, the
// assets whose profit is zero or positive.
func FilterEligible(assets []Asset, excluded []string, excludeNonNegative bool) []Asset {
	skip := make(map[string]bool, len(excluded))
	for _, id := range excluded {
		skip[id] = true
	}

	eligible := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if IsSummary(a.ID) || skip[a.ID] {
			continue
		}
		if excludeNonNegative && !a.Profit.IsNegative() {
			continue
		}
		eligible = append(eligible, a)
	}
	return eligible
}

// displayed returns the assets shown in a report: everything but summary rows.
func displayed(assets []Asset) []Asset {
	rows := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if !IsSummary(a.ID) {
			rows = append(rows, a)
		}
	}
	return rows
}
