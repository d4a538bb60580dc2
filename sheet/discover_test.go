package sheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/recovery"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to create %q: %v", path, err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Invested Money.xlsx")

	// nothing to read.
	if _, err := Discover(input, dir, nil); !errors.Is(err, recovery.ErrNotFound) {
		t.Errorf("Discover() on empty dir error = %v, want %v", err, recovery.ErrNotFound)
	}

	// only one candidate, ignoring lock and unrelated files.
	other := filepath.Join(dir, "Other.xlsx")
	touch(t, other)
	touch(t, filepath.Join(dir, "~$Other.xlsx"))
	touch(t, filepath.Join(dir, "notes.txt"))
	got, err := Discover(input, dir, nil)
	if err != nil || got != other {
		t.Errorf("Discover() = %q, %v, want %q", got, err, other)
	}

	// several candidates are submitted to the chooser.
	csv := filepath.Join(dir, "export.csv")
	touch(t, csv)
	var offered []string
	got, err = Discover(input, dir, func(candidates []string) (string, error) {
		offered = candidates
		return csv, nil
	})
	if err != nil || got != csv {
		t.Errorf("Discover() = %q, %v, want %q", got, err, csv)
	}
	if len(offered) != 2 {
		t.Errorf("Discover() offered %q, want 2 candidates", offered)
	}
	if _, err := Discover(input, dir, nil); !errors.Is(err, recovery.ErrNotFound) {
		t.Errorf("Discover() without chooser error = %v, want %v", err, recovery.ErrNotFound)
	}

	// the configured file wins when it exists.
	touch(t, input)
	got, err = Discover(input, dir, nil)
	if err != nil || got != input {
		t.Errorf("Discover() = %q, %v, want %q", got, err, input)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover("nope.xlsx", filepath.Join(t.TempDir(), "Input"), nil)
	if !errors.Is(err, recovery.ErrNotFound) {
		t.Errorf("Discover() error = %v, want %v", err, recovery.ErrNotFound)
	}
}
