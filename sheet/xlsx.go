package sheet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/recovery"
	"github.com/xuri/excelize/v2"
)

// readXLSX reads the records of sheet 'name' in the workbook at 'path'.
// The first non blank row is the header.
func readXLSX(path, name string) ([]record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !slices.Contains(f.GetSheetList(), name) {
		return nil, fmt.Errorf("%w: sheet %q not found, available sheets are %q", recovery.ErrFormat, name, f.GetSheetList())
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", recovery.ErrFormat, name, err)
	}
	return fromTable(rows, fmt.Sprintf("sheet %q", name))
}

// fromTable finds the header in a grid of cells and maps the rows below it.
// The header is the first row naming all the columns, titles above it are
// ignored. Lines are numbered from 1 like spreadsheets do.
func fromTable(rows [][]string, what string) ([]record, error) {
	var first error
	for i, row := range rows {
		if blank(row) {
			continue
		}
		records, err := fromRows(row, rows[i+1:], i+2)
		if err == nil {
			return records, nil
		}
		if first == nil {
			first = err
		}
	}
	if first != nil {
		return nil, fmt.Errorf("%s: %w", what, first)
	}
	return nil, fmt.Errorf("%w: %s has no header row", recovery.ErrFormat, what)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
