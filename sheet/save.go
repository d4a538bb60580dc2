package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/recovery"
	"github.com/xuri/excelize/v2"
)

// ResultsSheet is the name of the sheet written by Save.
const ResultsSheet = "Results"

// TotalID is the id of the totals row written by Save.
const TotalID = "TOTAL"

// header returns the column titles of a results table.
func header(r *recovery.Report) []string {
	loss := "Current Loss"
	if cur := r.Totals.Profit.Currency(); cur != "" {
		loss += " (" + cur + ")"
	}
	return []string{"CryptoCurrency", loss, "Investment", "Old % Loss", "New % Loss", "Improvement %"}
}

// cells returns the rows of a results table, numbers rounded to two
// decimals and nil where there is no value.
func cells(r *recovery.Report) [][]any {
	rows := make([][]any, 0, len(r.Rows)+1)
	for _, row := range r.Rows {
		rows = append(rows, []any{
			row.ID,
			row.Profit.Round().Float(),
			row.Investment.Round().Float(),
			round(float64(row.ProfitPercent)),
			round(float64(row.NewProfitPercent)),
			round(float64(row.Improvement)),
		})
	}
	rows = append(rows, []any{
		TotalID,
		r.Totals.Profit.Round().Float(),
		r.Totals.Investment.Round().Float(),
		nil, nil, nil,
	})
	return rows
}

func round(f float64) float64 { return math.Round(f*100) / 100 }

// Save writes the report to 'path' as .xlsx or .csv, creating its directory.
func Save(path string, r *recovery.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return saveXLSX(path, r)
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error opening %q for writing: %w", path, err)
		}
		defer f.Close()
		if err := WriteCSV(f, r); err != nil {
			return fmt.Errorf("error writing %q: %w", path, err)
		}
		return f.Close()
	default:
		return fmt.Errorf("%w: unsupported output file type %q", recovery.ErrFormat, ext)
	}
}

func saveXLSX(path string, r *recovery.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return err
	}
	title := header(r)
	if err := f.SetSheetRow(ResultsSheet, "A1", &title); err != nil {
		return err
	}
	for i, row := range cells(r) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ResultsSheet, cell, &row); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(title), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ResultsSheet, "A1", last, bold); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving %q: %w", path, err)
	}
	return nil
}

// WriteCSV writes the report as CSV, the totals row has blank percentages.
func WriteCSV(w io.Writer, r *recovery.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(r)); err != nil {
		return err
	}
	for _, row := range cells(r) {
		line := make([]string, len(row))
		for i, c := range row {
			switch v := c.(type) {
			case string:
				line[i] = v
			case float64:
				line[i] = strconv.FormatFloat(v, 'f', 2, 64)
			}
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
