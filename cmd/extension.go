package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/recovery/config"
	"github.com/rs/zerolog/log"
)

// RunExtension attempts to find and execute an external rcv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// Global flags set on the command line are passed down as the environment
// variables of the configuration, so that extensions read the same holdings.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "rcv-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("extension", externalCmdName).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

func extensionEnv() []string {
	var env []string
	set := func(key, value string) {
		if value != "" {
			env = append(env, key+"="+value)
		}
	}
	set(config.InputFile, *inputFile)
	set(config.SheetName, *sheetName)
	set(config.Currency, *currency)
	set(config.LogFile, *logFile)
	set(config.LogLevel, *logLevel)
	if *Verbose {
		set(config.Verbose, strconv.FormatBool(*Verbose))
	}
	return env
}
