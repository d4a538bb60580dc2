package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/recovery"
	"github.com/etnz/recovery/config"
	"github.com/google/subcommands"
)

const holdingsCSV = `Data;Total Spent - R$;Current Amount - R$;Profit - R$;Profit - %
A;R$ 1.000,00;R$ 900,00;-R$ 100,00;-10,00%
B;R$ 1.000,00;R$ 700,00;-R$ 300,00;-30,00%
C;R$ 100,00;R$ 150,00;R$ 50,00;50,00%
SUM;R$ 2.100,00;R$ 1.750,00;-R$ 350,00;-16,67%
`

// captureOutput redirects the standard streams of the commands to a single
// buffer.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &buf, &buf
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })
	return &buf
}

func withInput(t *testing.T, s string) {
	t.Helper()
	old := stdin
	stdin = strings.NewReader(s)
	t.Cleanup(func() { stdin = old })
}

func withFlag(t *testing.T, p *string, value string) {
	t.Helper()
	old := *p
	*p = value
	t.Cleanup(func() { *p = old })
}

// workspace prepares a directory with a holdings file and points the
// configuration to it. It returns the directory.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "Input")
	if err := os.MkdirAll(input, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(input, "holdings.csv"), []byte(holdingsCSV), 0644); err != nil {
		t.Fatal(err)
	}
	withFlag(t, dotenvFile, filepath.Join(dir, ".env"))
	t.Setenv(config.InputFile, filepath.Join(input, "holdings.csv"))
	t.Setenv(config.InputDir, input)
	t.Setenv(config.OutputFile, filepath.Join(dir, "Output", "rcv_Results.csv"))
	t.Setenv(config.LogFile, filepath.Join(dir, "Logs", "rcv.log"))
	t.Setenv(config.Excluded, "")
	return dir
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid flags %q: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestFail(t *testing.T) {
	testCases := []struct {
		err     error
		status  subcommands.ExitStatus
		message string
	}{
		{recovery.ErrNotFound, subcommands.ExitFailure, "Not found"},
		{recovery.ErrFormat, subcommands.ExitFailure, "Invalid input file"},
		{recovery.ErrInvalidConfiguration, subcommands.ExitUsageError, "Invalid configuration"},
		{recovery.ErrData, subcommands.ExitFailure, "Inconsistent holdings"},
		{errors.New("boom"), subcommands.ExitFailure, "Error: boom"},
	}
	for _, tc := range testCases {
		out := captureOutput(t)
		if got := fail(tc.err); got != tc.status {
			t.Errorf("fail(%v) = %v, want %v", tc.err, got, tc.status)
		}
		if !strings.Contains(out.String(), tc.message) {
			t.Errorf("fail(%v) printed %q, want %q", tc.err, out.String(), tc.message)
		}
	}
}

func TestChooseFile(t *testing.T) {
	out := captureOutput(t)
	withInput(t, "zero\n3\n2\n")

	got, err := chooseFile([]string{"a.xlsx", "b.csv"})
	if err != nil || got != "b.csv" {
		t.Errorf("chooseFile() = %q, %v, want %q", got, err, "b.csv")
	}
	if n := strings.Count(out.String(), "Invalid choice."); n != 2 {
		t.Errorf("chooseFile() rejected %d answers, want 2:\n%s", n, out.String())
	}

	withInput(t, "")
	if _, err := chooseFile([]string{"a.xlsx", "b.csv"}); !errors.Is(err, recovery.ErrNotFound) {
		t.Errorf("chooseFile() error = %v, want %v", err, recovery.ErrNotFound)
	}
}

func TestSetup_Flags(t *testing.T) {
	dir := workspace(t)
	withFlag(t, inputFile, filepath.Join(dir, "other.xlsx"))
	withFlag(t, currency, "usd")
	withFlag(t, logLevel, "debug")

	cfg, closeLog, err := setup()
	defer closeLog()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	if cfg.InputFile != filepath.Join(dir, "other.xlsx") || cfg.Currency != "USD" || cfg.LogLevel != "debug" {
		t.Errorf("setup() did not apply the flags: %+v", cfg)
	}
	if _, err := os.Stat(filepath.Join(dir, "Logs", "rcv.log")); err != nil {
		t.Errorf("setup() did not create the log file: %v", err)
	}

	withFlag(t, currency, "NOPE")
	if _, closeLog, err := setup(); !errors.Is(err, recovery.ErrInvalidConfiguration) {
		closeLog()
		t.Errorf("setup() error = %v, want %v", err, recovery.ErrInvalidConfiguration)
	}
}
