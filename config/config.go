// Package config loads the settings of the rcv command.
//
// Values are layered, each one overriding the previous: built-in defaults,
// a .env file, an optional configuration file in any format viper reads,
// then environment variables. Command flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/etnz/recovery"
	"github.com/etnz/recovery/logger"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Keys, also the names of the environment variables.
const (
	InputFile       = "INPUT_FILE"
	InputDir        = "INPUT_DIR"
	SheetName       = "SHEET_NAME"
	OutputFile      = "OUTPUT_FILE"
	Budget          = "AVAILABLE_BUDGET"
	Currency        = "CURRENCY"
	Excluded        = "EXCLUDED_CRYPTOS"
	ExcludePositive = "EXCLUDE_POSITIVE_CRYPTOCURRENCIES"
	LogFile         = "LOG_FILE"
	LogLevel        = "LOG_LEVEL"
	Verbose         = "VERBOSE"
)

var defaults = map[string]any{
	InputFile:       "./Input/Invested Money.xlsx",
	InputDir:        "./Input",
	SheetName:       "CryptoCurrencies",
	OutputFile:      "./Output/rcv_Results.xlsx",
	Budget:          "500",
	Currency:        "BRL",
	Excluded:        "Bitcoin,Ethereum,USDC,USDT,Ripple",
	ExcludePositive: true,
	LogFile:         "./Logs/rcv.log",
	LogLevel:        "info",
	Verbose:         false,
}

// Config holds the resolved settings.
type Config struct {
	InputFile       string
	InputDir        string
	SheetName       string
	OutputFile      string
	Budget          decimal.Decimal
	Currency        string
	Excluded        []string
	ExcludePositive bool
	LogFile         string
	LogLevel        string
	Verbose         bool
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		panic(err) // defaults are constants
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

// Load resolves the configuration.
//
// 'dotenv' and 'file' are optional: an empty path is skipped, and so is a
// missing .env file. A missing configuration file is an error since it was
// asked for.
func Load(dotenv, file string) (*Config, error) {
	v := newViper()

	if dotenv != "" {
		values, err := godotenv.Read(dotenv)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("%w: reading %q: %v", recovery.ErrInvalidConfiguration, dotenv, err)
		default:
			m := make(map[string]any, len(values))
			for k, val := range values {
				m[k] = val
			}
			if err := v.MergeConfigMap(m); err != nil {
				return nil, fmt.Errorf("%w: reading %q: %v", recovery.ErrInvalidConfiguration, dotenv, err)
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.MergeInConfig(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: configuration file %q", recovery.ErrNotFound, file)
			}
			return nil, fmt.Errorf("%w: reading %q: %v", recovery.ErrInvalidConfiguration, file, err)
		}
	}

	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func decode(v *viper.Viper) (*Config, error) {
	budget, err := decimal.NewFromString(strings.TrimSpace(v.GetString(Budget)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not a number", recovery.ErrInvalidConfiguration, Budget, v.GetString(Budget))
	}
	return &Config{
		InputFile:       v.GetString(InputFile),
		InputDir:        v.GetString(InputDir),
		SheetName:       v.GetString(SheetName),
		OutputFile:      v.GetString(OutputFile),
		Budget:          budget,
		Currency:        strings.ToUpper(strings.TrimSpace(v.GetString(Currency))),
		Excluded:        list(v.Get(Excluded)),
		ExcludePositive: v.GetBool(ExcludePositive),
		LogFile:         v.GetString(LogFile),
		LogLevel:        strings.ToLower(v.GetString(LogLevel)),
		Verbose:         v.GetBool(Verbose),
	}, nil
}

// list reads a comma separated string, or a list from a structured file.
func list(value any) []string {
	var items []string
	switch val := value.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		items = strings.Split(val, ",")
	case []string:
		items = val
	case []any:
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
	default:
		items = []string{fmt.Sprint(val)}
	}
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}

// Validate returns an ErrInvalidConfiguration error describing the first
// invalid setting.
func (c *Config) Validate() error {
	if c.Budget.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative, got %s", recovery.ErrInvalidConfiguration, Budget, c.Budget)
	}
	if !recovery.KnownCurrency(c.Currency) {
		return fmt.Errorf("%w: %s=%q is not a currency code", recovery.ErrInvalidConfiguration, Currency, c.Currency)
	}
	for _, id := range c.Excluded {
		if id == "" {
			return fmt.Errorf("%w: %s has a blank entry", recovery.ErrInvalidConfiguration, Excluded)
		}
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s=%q is not a log level", recovery.ErrInvalidConfiguration, LogLevel, c.LogLevel)
	}
	if c.SheetName == "" {
		return fmt.Errorf("%w: %s is empty", recovery.ErrInvalidConfiguration, SheetName)
	}
	return nil
}

// Options returns the calculator options.
func (c *Config) Options() recovery.Options {
	return recovery.Options{
		Budget:             recovery.M(c.Budget, c.Currency),
		Excluded:           c.Excluded,
		ExcludeNonNegative: c.ExcludePositive,
	}
}
