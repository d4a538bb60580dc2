// Package sheet reads holdings tables and writes recommendation tables.
//
// Holdings come from spreadsheets (.xlsx), CSV files or JSON documents with
// the columns of the "CryptoCurrencies" sheet:
//
//	Data | Total Spent - R$ | Current Amount - R$ | Profit - R$ | Profit - %
//
// Column names are matched ignoring case, spacing and the unit suffix, so
// sheets kept in another currency work the same.
package sheet

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/etnz/recovery"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DefaultSheet is the sheet read from spreadsheets when none is given.
const DefaultSheet = "CryptoCurrencies"

// DefaultSelector is the JSONPath selecting rows in a JSON document when none is given.
const DefaultSelector = "$[*]"

// field is a column of the holdings table.
type field int

const (
	fieldID field = iota
	fieldSpent
	fieldValue
	fieldProfit
	fieldPercent
	numFields
)

var fieldNames = [numFields]string{"Data", "Total Spent", "Current Amount", "Profit", "Profit - %"}

func (f field) String() string { return fieldNames[f] }

// aliases maps normalized header names to fields.
var aliases = map[string]field{
	"data":           fieldID,
	"id":             fieldID,
	"coin":           fieldID,
	"asset":          fieldID,
	"cryptocurrency": fieldID,
	"total spent":    fieldSpent,
	"spent":          fieldSpent,
	"current amount": fieldValue,
	"current value":  fieldValue,
	"value":          fieldValue,
	"profit":         fieldProfit,
	"profit %":       fieldPercent,
}

// normalize turns "Total Spent - R$" into "total spent" and "Profit - %" into "profit %".
func normalize(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	percent := strings.HasSuffix(s, "%")
	if i := strings.Index(s, " - "); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	s = strings.Join(strings.Fields(strings.TrimSuffix(s, "%")), " ")
	if percent {
		s += " %"
	}
	return s
}

// record is one row of text cells, by field.
type record struct {
	line  int // position in the source, for error messages
	cells [numFields]string
}

// fromRows maps a header and its rows into records.
func fromRows(header []string, rows [][]string, firstLine int) ([]record, error) {
	index := [numFields]int{-1, -1, -1, -1, -1}
	for i, h := range header {
		if f, ok := aliases[normalize(h)]; ok && index[f] < 0 {
			index[f] = i
		}
	}
	var missing []string
	for f, i := range index {
		if i < 0 {
			missing = append(missing, field(f).String())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %q in header %q", recovery.ErrFormat, missing, header)
	}

	records := make([]record, 0, len(rows))
	for n, row := range rows {
		r := record{line: firstLine + n}
		for f, i := range index {
			if i < len(row) {
				r.cells[f] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, r)
	}
	return records, nil
}

// toAssets parses records into assets in 'currency'. Rows without an id are skipped.
func toAssets(records []record, currency string) ([]recovery.Asset, error) {
	assets := make([]recovery.Asset, 0, len(records))
	for _, r := range records {
		id := r.cells[fieldID]
		if id == "" {
			log.Debug().Int("line", r.line).Msg("skipping row without id")
			continue
		}
		var nums [numFields]decimal.Decimal
		for _, f := range []field{fieldSpent, fieldValue, fieldProfit, fieldPercent} {
			cell := r.cells[f]
			if cell == "" {
				continue // blank cells count as zero
			}
			d, err := ParseNumber(cell, currency)
			if err != nil {
				return nil, fmt.Errorf("line %d, asset %q, column %s: %w", r.line, id, f, err)
			}
			nums[f] = d
		}
		assets = append(assets, recovery.Asset{
			ID:            id,
			TotalSpent:    recovery.M(nums[fieldSpent], currency),
			CurrentValue:  recovery.M(nums[fieldValue], currency),
			Profit:        recovery.M(nums[fieldProfit], currency),
			ProfitPercent: recovery.Percent(nums[fieldPercent].InexactFloat64()),
		})
	}
	return assets, nil
}

// Open reads the holdings stored in 'path', amounts are in 'currency'.
//
// The format is chosen from the file extension: .xlsx (selector is the sheet
// name), .csv (selector is ignored) and .json (selector is a JSONPath
// expression returning the list of row objects). An empty selector selects
// the default for the format.
func Open(path, selector, currency string) ([]recovery.Asset, error) {
	var (
		records []record
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		if selector == "" {
			selector = DefaultSheet
		}
		records, err = readXLSX(path, selector)
	case ".csv":
		records, err = readCSVFile(path)
	case ".json":
		if selector == "" {
			selector = DefaultSelector
		}
		records, err = readJSONFile(path, selector)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q for %q", recovery.ErrFormat, ext, path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: input file %q: %v", recovery.ErrNotFound, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	assets, err := toAssets(records, currency)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	log.Debug().Str("file", path).Int("assets", len(assets)).Msg("holdings loaded")
	return assets, nil
}
