package recovery

// BRL is a helper for test to create reais from const
func BRL(v float64) Money { return M(v, "BRL") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// asset is a helper to build a consistent asset from spend and profit.
func asset(id string, spent, profit float64) Asset {
	a := Asset{
		ID:           id,
		TotalSpent:   BRL(spent),
		CurrentValue: BRL(spent + profit),
		Profit:       BRL(profit),
	}
	if spent != 0 {
		a.ProfitPercent = Percent(profit / spent * 100)
	}
	return a
}

func ids(rows []Allocation) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}
