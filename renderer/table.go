package renderer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/etnz/recovery"
)

// Palette of the terminal table.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	nameStyle   = cellStyle.Foreground(lipgloss.Color("2"))
	lossStyle   = cellStyle.Foreground(lipgloss.Color("1"))
	gainStyle   = cellStyle.Foreground(lipgloss.Color("6"))
	totalStyle  = cellStyle.Bold(true)
)

// ReportTable renders the report as a bordered table for terminals.
//
// Asset names are green, losses red, the investment and the improvement
// cyan. When 'colored' is false the same layout is printed without styles.
func ReportTable(r *recovery.Report, colored bool) string {
	rows := make([][]string, 0, len(r.Rows)+1)
	for i, row := range r.Rows {
		rows = append(rows, cells(fmt.Sprint(i+1), row))
	}
	rows = append(rows, totalCells(r.Totals))
	last := len(rows) - 1

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(reportHeader...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if !colored {
				if row == table.HeaderRow {
					return headerStyle.UnsetBold()
				}
				return cellStyle
			}
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == last:
				return totalStyle
			}
			switch col {
			case 0, 1:
				return nameStyle
			case 2, 4, 5:
				return lossStyle
			case 3, 6:
				return gainStyle
			}
			return cellStyle
		})
	return t.String()
}
