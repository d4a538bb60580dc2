package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/recovery"
	md "github.com/nao1215/markdown"
)

// AssetsMarkdown renders the holdings as read from the input, summary rows
// included.
func AssetsMarkdown(assets []recovery.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		id := a.ID
		if recovery.IsSummary(id) {
			id = md.Bold(id)
		}
		rows = append(rows, []string{
			id,
			a.TotalSpent.String(),
			a.CurrentValue.String(),
			a.Profit.SignedString(),
			a.ProfitPercent.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Asset", "Total Spent", "Current Value", "Profit", "Profit %"},
		Rows:      rows,
	})
	doc.PlainText(fmt.Sprintf("%d rows.", len(assets)))
	return doc.String()
}
