package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdConvert = "convert"
	cmdConfig  = "config"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	setMaxProcs(wantsVerbose(os.Args), os.Stderr)
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args and returns the process exit code.
// args[0] is the program name. Without a known command name, args are
// handed to convert.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	rest := args[1:]
	cmd := cmdConvert
	if len(rest) > 0 && isCommand(rest[0]) {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "go-md2docx %s\n", Version)
		return ExitSuccess
	case cmdHelp:
		return runHelp(rest, env)
	case cmdConfig:
		return report(runConfig(rest, env), env)
	default:
		flags, positional, err := parseConvertFlags(rest, env.Stderr)
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
			fmt.Fprintln(env.Stderr, "Run 'md2docx help convert' for usage.")
			return ExitUsage
		}
		return report(runConvert(ctx, positional, flags, env), env)
	}
}

// report prints err to stderr and maps it to an exit code.
func report(err error, env *Environment) int {
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case cmdConvert, cmdConfig, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// wantsVerbose reports whether args request verbose output.
// Used before flag parsing, so it only recognizes the plain spellings.
func wantsVerbose(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) {
	logf := func(string, ...interface{}) {}
	if verbose {
		logf = func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}
