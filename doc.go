// Package recovery computes how to spread an additional budget across the
// losing assets of a crypto portfolio to reduce its overall loss.
//
// The input is a holdings table, one [Asset] per coin with the amount spent,
// its current value and the resulting profit. The calculator:
//   - selects the eligible assets: summary rows, excluded coins and,
//     optionally, assets that are not at a loss are left out ([FilterEligible]);
//   - splits the budget in proportion to each asset's loss in currency
//     ([Allocate]);
//   - recomputes each loss percentage as if the investment was added to the
//     cost basis at current price, which dilutes the loss without changing
//     its amount;
//   - merges the recommendations back into the full table and appends totals
//     ([BuildReport]).
//
// [Calculate] runs the whole pipeline. It is a pure function of its inputs, so
// several runs can be issued concurrently, which [CompareBudgets] does to
// compare candidate budgets.
//
// Reading spreadsheets, rendering and the command line live in the sheet,
// renderer and cmd packages.
package recovery
