package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/recovery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".env"), "")
	require.NoError(t, err)

	assert.Equal(t, "./Input/Invested Money.xlsx", cfg.InputFile)
	assert.Equal(t, "./Input", cfg.InputDir)
	assert.Equal(t, "CryptoCurrencies", cfg.SheetName)
	assert.Equal(t, "./Output/rcv_Results.xlsx", cfg.OutputFile)
	assert.True(t, cfg.Budget.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "BRL", cfg.Currency)
	assert.Equal(t, []string{"Bitcoin", "Ethereum", "USDC", "USDT", "Ripple"}, cfg.Excluded)
	assert.True(t, cfg.ExcludePositive)
	assert.Equal(t, "./Logs/rcv.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Verbose)

	assert.Equal(t, cfg, Default())
}

func TestLoad_Layers(t *testing.T) {
	dir := t.TempDir()
	dotenv := write(t, filepath.Join(dir, ".env"), "AVAILABLE_BUDGET=1000\nCURRENCY=usd\nSHEET_NAME=FromDotEnv\nVERBOSE=true\n")
	file := write(t, filepath.Join(dir, "rcv.yaml"), `
available_budget: 750.5
excluded_cryptos:
  - Bitcoin
  - Solana
exclude_positive_cryptocurrencies: false
`)
	t.Setenv(Budget, "250")

	cfg, err := Load(dotenv, file)
	require.NoError(t, err)

	// environment wins over the file, the file over .env.
	assert.True(t, cfg.Budget.Equal(decimal.NewFromInt(250)), "budget = %v", cfg.Budget)
	assert.Equal(t, []string{"Bitcoin", "Solana"}, cfg.Excluded)
	assert.False(t, cfg.ExcludePositive)
	// .env wins over defaults.
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "FromDotEnv", cfg.SheetName)
	assert.True(t, cfg.Verbose)
}

func TestLoad_ExcludedFromEnv(t *testing.T) {
	t.Setenv(Excluded, " Bitcoin , Tether")
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bitcoin", "Tether"}, cfg.Excluded)

	t.Setenv(Excluded, "")
	cfg, err = Load("", "")
	require.NoError(t, err)
	assert.Empty(t, cfg.Excluded)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name string
		env  map[string]string
		file string
		want error
	}{
		{name: "negative budget", env: map[string]string{Budget: "-1"}, want: recovery.ErrInvalidConfiguration},
		{name: "budget not a number", env: map[string]string{Budget: "lots"}, want: recovery.ErrInvalidConfiguration},
		{name: "unknown currency", env: map[string]string{Currency: "XYZW"}, want: recovery.ErrInvalidConfiguration},
		{name: "blank exclusion", env: map[string]string{Excluded: "Bitcoin,,Ethereum"}, want: recovery.ErrInvalidConfiguration},
		{name: "unknown log level", env: map[string]string{LogLevel: "loud"}, want: recovery.ErrInvalidConfiguration},
		{name: "missing file", file: filepath.Join(dir, "missing.yaml"), want: recovery.ErrNotFound},
		{name: "broken file", file: write(t, filepath.Join(dir, "broken.json"), "{"), want: recovery.ErrInvalidConfiguration},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load("", tc.file)
			if !errors.Is(err, tc.want) {
				t.Errorf("Load() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.Options()

	assert.True(t, opts.Budget.Equal(recovery.M(500, "BRL")))
	assert.Equal(t, cfg.Excluded, opts.Excluded)
	assert.True(t, opts.ExcludeNonNegative)
	assert.NoError(t, opts.Validate())
}
