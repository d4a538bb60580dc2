package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/recovery"
	md "github.com/nao1215/markdown"
)

// ScenariosMarkdown renders one line per candidate budget so that their
// outcomes can be compared side by side.
func ScenariosMarkdown(scenarios []recovery.Scenario) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budget Scenarios")
	if len(scenarios) == 0 {
		doc.PlainText("No budget to compare.")
		return doc.String()
	}

	rows := make([][]string, 0, len(scenarios))
	for _, s := range scenarios {
		best := "-"
		if a, ok := bestImprovement(s.Report); ok && a.Improvement != 0 {
			best = fmt.Sprintf("%s %s", a.ID, a.Improvement.SignedString())
		}
		rows = append(rows, []string{
			s.Budget.String(),
			s.Report.Totals.Investment.Round().String(),
			fmt.Sprint(s.Report.Eligible),
			s.Report.LossBefore.SignedString(),
			s.Report.LossAfter.SignedString(),
			best,
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    scenarioHeader,
		Rows:      rows,
	})
	return doc.String()
}
