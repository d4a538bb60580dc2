package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/recovery"
	"github.com/rs/zerolog/log"
)

// extensions readable by Open.
var extensions = []string{".xlsx", ".xlsm", ".csv", ".json"}

// Chooser picks one file among several candidates, typically by asking the user.
type Chooser func(candidates []string) (string, error)

// Discover returns the input file to read.
//
// 'file' is used if it exists. Otherwise the readable files in 'dir' are
// listed: a single one is used, several are submitted to 'choose'.
// It returns an ErrNotFound error when there is nothing to read.
func Discover(file, dir string, choose Chooser) (string, error) {
	if file != "" {
		if _, err := os.Stat(file); err == nil {
			return file, nil
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: input file %q does not exist and directory %q cannot be read: %v", recovery.ErrNotFound, file, dir, err)
	}
	var candidates []string
	for _, e := range entries {
		name := e.Name()
		// skip office lock files
		if e.IsDir() || strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".") {
			continue
		}
		if slices.Contains(extensions, strings.ToLower(filepath.Ext(name))) {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: input file %q does not exist and %q contains no spreadsheet", recovery.ErrNotFound, file, dir)
	case 1:
		log.Warn().Str("missing", file).Str("using", candidates[0]).Msg("input file not found, using the only candidate")
		return candidates[0], nil
	default:
		if choose == nil {
			return "", fmt.Errorf("%w: input file %q does not exist and %q contains several spreadsheets", recovery.ErrNotFound, file, dir)
		}
		chosen, err := choose(candidates)
		if err != nil {
			return "", err
		}
		if !slices.Contains(candidates, chosen) {
			return "", fmt.Errorf("%w: %q is not one of the candidates", recovery.ErrNotFound, chosen)
		}
		return chosen, nil
	}
}
