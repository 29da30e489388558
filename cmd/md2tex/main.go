package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Commands recognized as the first argument. Anything else is handed to
// convert, so "md2tex Min rapport" converts with the title "Min rapport".
var commands = []string{"convert", "doctor", "version", "help"}

func main() {
	verbose := slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose")

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	cmd := "convert"
	if len(rest) > 0 && isCommand(rest[0]) {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "md2tex %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(ctx, rest, env)
	}

	warnUnknownEnvVars(env.Stderr)

	err := runConvert(ctx, rest, env)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	return slices.Contains(commands, name)
}
