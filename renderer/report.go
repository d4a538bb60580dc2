package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/recovery"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the recovery plan as a markdown document: the
// allocation table followed by the aggregate loss before and after investing.
func ReportMarkdown(r *recovery.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Recovery Plan")
	doc.PlainText(fmt.Sprintf("Budget of %s spread over %d of %d assets.", r.Budget, r.Eligible, len(r.Rows)))

	rows := make([][]string, 0, len(r.Rows)+1)
	for i, row := range r.Rows {
		rows = append(rows, cells(fmt.Sprint(i+1), row))
	}
	total := totalCells(r.Totals)
	for i := range total {
		if total[i] != "" {
			total[i] = md.Bold(total[i])
		}
	}
	rows = append(rows, total)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    reportHeader,
		Rows:      rows,
	})

	if r.Eligible == 0 {
		doc.PlainText("No asset is eligible, nothing to invest.")
		return doc.String()
	}

	doc.H2("Outcome")
	doc.PlainText(fmt.Sprintf("Aggregate loss goes from %s to %s.", r.LossBefore.SignedString(), r.LossAfter.SignedString()))
	if best, ok := bestImprovement(r); ok {
		doc.PlainText(fmt.Sprintf("Largest improvement: %s with %s.", md.Bold(best.ID), best.Improvement.SignedString()))
	}
	return doc.String()
}
