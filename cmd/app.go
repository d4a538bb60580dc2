// Package cmd implements the rcv command line application.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/recovery"
	"github.com/etnz/recovery/config"
	"github.com/etnz/recovery/logger"
	"github.com/etnz/recovery/sheet"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Commands lists the subcommands of rcv.
var Commands = []subcommands.Command{
	&reportCmd{},
	&scenariosCmd{},
	&assistCmd{},
	&topicCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Configuration file, in any format viper reads (yaml, toml, json...)")
	dotenvFile = flag.String("env", ".env", "File of environment variables, skipped when missing")
	inputFile  = flag.String("input", "", "Holdings file (.xlsx, .csv or .json), overrides INPUT_FILE")
	sheetName  = flag.String("sheet", "", "Worksheet to read, or JSONPath for .json files, overrides SHEET_NAME")
	currency   = flag.String("currency", "", "Currency of the holdings, overrides CURRENCY")
	logFile    = flag.String("log", "", "Log file, overrides LOG_FILE")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn or error, overrides LOG_LEVEL")
	Verbose    = flag.Bool("v", false, "Print the log on the terminal too")
)

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// setup loads the configuration, applies the global flags and installs the
// logger. The returned function closes the log file.
func setup() (*config.Config, func(), error) {
	cfg, err := config.Load(*dotenvFile, *configFile)
	if err != nil {
		return nil, func() {}, err
	}
	override(&cfg.InputFile, *inputFile)
	override(&cfg.SheetName, *sheetName)
	override(&cfg.Currency, strings.ToUpper(*currency))
	override(&cfg.LogFile, *logFile)
	override(&cfg.LogLevel, *logLevel)
	cfg.Verbose = cfg.Verbose || *Verbose
	if err := cfg.Validate(); err != nil {
		return nil, func() {}, err
	}

	lcfg := logger.Config{Level: cfg.LogLevel, Pretty: true, Console: io.Discard}
	if cfg.Verbose {
		lcfg.Console = stderr
	}
	closer := func() {}
	if cfg.LogFile != "" {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, func() {}, fmt.Errorf("%w: log file: %v", recovery.ErrInvalidConfiguration, err)
		}
		lcfg.File = f
		closer = func() { f.Close() }
	}
	logger.SetGlobalLogger(logger.New(lcfg))
	log.Debug().Interface("config", cfg).Msg("configuration loaded")
	return cfg, closer, nil
}

func override(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}

// runFlags are the flags of the commands computing a plan.
type runFlags struct {
	budget          string
	exclude         string
	includePositive bool
}

func (r *runFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.exclude, "x", "", "Comma separated assets not to invest in, overrides EXCLUDED_CRYPTOS. Use '-' for none")
	f.BoolVar(&r.includePositive, "include-positive", false, "Also invest in assets at a profit")
}

// apply overrides the configuration with the flags.
func (r *runFlags) apply(cfg *config.Config) error {
	if r.budget != "" {
		b, err := parseAmount(r.budget)
		if err != nil {
			return err
		}
		cfg.Budget = b
	}
	switch r.exclude {
	case "":
	case "-":
		cfg.Excluded = nil
	default:
		cfg.Excluded = strings.Split(r.exclude, ",")
		for i := range cfg.Excluded {
			cfg.Excluded[i] = strings.TrimSpace(cfg.Excluded[i])
		}
	}
	if r.includePositive {
		cfg.ExcludePositive = false
	}
	return cfg.Validate()
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return d, fmt.Errorf("%w: budget %q is not a number", recovery.ErrInvalidConfiguration, s)
	}
	return d, nil
}

// loadAssets finds and reads the holdings file.
func loadAssets(cfg *config.Config) ([]recovery.Asset, error) {
	path, err := sheet.Discover(cfg.InputFile, cfg.InputDir, chooseFile)
	if err != nil {
		return nil, err
	}
	selector := cfg.SheetName
	if strings.EqualFold(filepath.Ext(path), ".json") && selector == sheet.DefaultSheet {
		selector = ""
	}
	log.Info().Str("file", path).Str("selector", selector).Msg("reading holdings")
	return sheet.Open(path, selector, cfg.Currency)
}

// chooseFile asks the user to pick one of the candidates.
func chooseFile(candidates []string) (string, error) {
	fmt.Fprintln(stderr, "Several input files were found:")
	for i, c := range candidates {
		fmt.Fprintf(stderr, "  %d. %s\n", i+1, c)
	}
	r := bufio.NewReader(stdin)
	for {
		fmt.Fprintf(stderr, "Choose a file [1-%d]: ", len(candidates))
		line, err := r.ReadString('\n')
		if n, perr := strconv.Atoi(strings.TrimSpace(line)); perr == nil && n >= 1 && n <= len(candidates) {
			return candidates[n-1], nil
		}
		if err != nil {
			fmt.Fprintln(stderr)
			return "", fmt.Errorf("%w: no input file chosen", recovery.ErrNotFound)
		}
		fmt.Fprintln(stderr, "Invalid choice.")
	}
}

// fail reports err to the user and returns the matching exit status.
func fail(err error) subcommands.ExitStatus {
	log.Error().Err(err).Msg("run failed")
	switch {
	case errors.Is(err, recovery.ErrNotFound):
		fmt.Fprintf(stderr, "Not found: %v\n", err)
	case errors.Is(err, recovery.ErrFormat):
		fmt.Fprintf(stderr, "Invalid input file: %v\n", err)
	case errors.Is(err, recovery.ErrInvalidConfiguration):
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return subcommands.ExitUsageError
	case errors.Is(err, recovery.ErrData):
		fmt.Fprintf(stderr, "Inconsistent holdings: %v\n", err)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	printMarkdownTo(stdout, md)
}

func printMarkdownTo(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	log.Warn().Err(err).Msg("cannot render markdown")
	fmt.Fprint(w, md)
}
