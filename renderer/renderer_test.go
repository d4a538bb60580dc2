package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/recovery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func brl(v float64) recovery.Money { return recovery.M(v, "BRL") }

func holdings() []recovery.Asset {
	return []recovery.Asset{
		{ID: "Cardano", TotalSpent: brl(1000), CurrentValue: brl(900), Profit: brl(-100), ProfitPercent: -10},
		{ID: "Polkadot", TotalSpent: brl(1000), CurrentValue: brl(700), Profit: brl(-300), ProfitPercent: -30},
		{ID: "Solana", TotalSpent: brl(100), CurrentValue: brl(150), Profit: brl(50), ProfitPercent: 50},
		{ID: "SUM", TotalSpent: brl(2100), CurrentValue: brl(1750), Profit: brl(-350), ProfitPercent: -16.67},
	}
}

func calculate(t *testing.T, budget float64, excluded ...string) *recovery.Report {
	t.Helper()
	r, err := recovery.Calculate(holdings(), recovery.Options{Budget: brl(budget), Excluded: excluded, ExcludeNonNegative: true})
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}
	return r
}

// tableRows parses a markdown document and returns the text of each table
// body row, cells joined by '|'.
func tableRows(t *testing.T, doc string) []string {
	t.Helper()
	src := []byte(doc)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var rows []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != extast.KindTableRow {
			return ast.WalkContinue, nil
		}
		var cells []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, strings.TrimSpace(string(c.Text(src))))
		}
		rows = append(rows, strings.Join(cells, "|"))
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		t.Fatalf("walking markdown failed: %v", err)
	}
	return rows
}

func TestReportMarkdown(t *testing.T) {
	got := ReportMarkdown(calculate(t, 400))

	if !strings.HasPrefix(got, "# Recovery Plan") {
		t.Errorf("ReportMarkdown() does not start with the title:\n%s", got)
	}
	rows := tableRows(t, got)
	if len(rows) != 4 {
		t.Fatalf("ReportMarkdown() has %d table rows, want 4:\n%s", len(rows), got)
	}
	for i, prefix := range []string{"1|Polkadot|", "2|Cardano|", "3|Solana|", "|TOTAL|"} {
		if !strings.HasPrefix(rows[i], prefix) {
			t.Errorf("row %d = %q, want prefix %q", i, rows[i], prefix)
		}
	}
	for _, want := range []string{"## Outcome", "-20.00%", "-16.67%", "**Polkadot**", "+6.92%"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestReportMarkdown_NoEligibleAsset(t *testing.T) {
	got := ReportMarkdown(calculate(t, 400, "Cardano", "Polkadot"))

	if rows := tableRows(t, got); len(rows) != 4 {
		t.Errorf("ReportMarkdown() has %d table rows, want 4:\n%s", len(rows), got)
	}
	if strings.Contains(got, "## Outcome") {
		t.Errorf("ReportMarkdown() has an outcome without any investment:\n%s", got)
	}
	if !strings.Contains(got, "nothing to invest") {
		t.Errorf("ReportMarkdown() does not explain the empty plan:\n%s", got)
	}
}

func TestScenariosMarkdown(t *testing.T) {
	scenarios := []recovery.Scenario{
		{Budget: brl(0), Report: calculate(t, 0)},
		{Budget: brl(400), Report: calculate(t, 400)},
	}
	got := ScenariosMarkdown(scenarios)

	rows := tableRows(t, got)
	if len(rows) != 2 {
		t.Fatalf("ScenariosMarkdown() has %d table rows, want 2:\n%s", len(rows), got)
	}
	if !strings.HasSuffix(rows[0], "|-") {
		t.Errorf("zero budget row = %q, want no best improvement", rows[0])
	}
	if !strings.Contains(rows[1], "Polkadot +6.92%") {
		t.Errorf("row = %q, want Polkadot as best improvement", rows[1])
	}

	if got := ScenariosMarkdown(nil); !strings.Contains(got, "No budget") {
		t.Errorf("ScenariosMarkdown(nil) = %q", got)
	}
}

func TestReportTable(t *testing.T) {
	got := ReportTable(calculate(t, 400), false)

	if strings.Contains(got, "\x1b[") {
		t.Errorf("ReportTable() without colors has escape sequences:\n%s", got)
	}
	for _, want := range []string{"Cryptocurrency", "Polkadot", "Cardano", "Solana", "TOTAL", "Improvement %"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportTable() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "Polkadot") > strings.Index(got, "Cardano") {
		t.Errorf("ReportTable() is not sorted by loss:\n%s", got)
	}
}

func TestAssetsMarkdown(t *testing.T) {
	got := AssetsMarkdown(holdings())

	rows := tableRows(t, got)
	if len(rows) != 4 {
		t.Fatalf("AssetsMarkdown() has %d table rows, want 4:\n%s", len(rows), got)
	}
	if !strings.HasPrefix(rows[0], "Cardano|") {
		t.Errorf("first row = %q, want Cardano in input order", rows[0])
	}
	if !strings.Contains(got, "**SUM**") {
		t.Errorf("AssetsMarkdown() does not highlight the summary row:\n%s", got)
	}
}
