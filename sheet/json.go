package sheet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/recovery"
)

func readJSONFile(path, selector string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readJSON(f, selector)
}

// readJSON reads records from a JSON document. 'selector' is a JSONPath
// expression returning the row objects, e.g. "$.portfolio.coins[*]". Object
// properties are matched as column headers.
func readJSON(r io.Reader, selector string) ([]record, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", recovery.ErrFormat, err)
	}
	jval, err := jsonpath.Get(selector, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: selecting %q: %v", recovery.ErrFormat, selector, err)
	}
	// a path to a single array returns it, a wildcard returns the list of matches.
	items, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not select a list of rows", recovery.ErrFormat, selector)
	}
	if len(items) == 1 {
		if inner, ok := items[0].([]any); ok {
			items = inner
		}
	}

	// headers are sorted so that the column picked for a field does not
	// depend on map order when several properties match it.
	var objects []map[string]any
	seen := map[string]bool{}
	var keys []string
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: row %d selected by %q is not an object", recovery.ErrFormat, i+1, selector)
		}
		objects = append(objects, obj)
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	header := keys
	pos := make(map[string]int, len(keys))
	for i, k := range keys {
		pos[k] = i
	}

	rows := make([][]string, 0, len(objects))
	for _, obj := range objects {
		row := make([]string, len(header))
		for k, v := range obj {
			row[pos[k]] = jsonText(v)
		}
		rows = append(rows, row)
	}
	return fromRows(header, rows, 1)
}

// jsonText converts a json scalar to the text of a cell.
func jsonText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		// a fraction of three digits would read as thousands in some locales.
		text := strconv.FormatFloat(x, 'f', -1, 64)
		if i := strings.IndexByte(text, '.'); i >= 0 && len(text)-i-1 == 3 {
			text += "0"
		}
		return text
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
