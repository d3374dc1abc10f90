package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(cmd *Command, stderr io.Writer) (*flag.FlagSet, *string) {
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "Path to config file (default: search for .quizbank/config.yml)")
	return flags, configPath
}

// parseFlags parses args and checks the positional count. When ok is false
// the command returns code without doing any work.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, positional int, stdout, stderr io.Writer) (code int, ok bool) {
	if wantsHelp(args) {
		printCommandUsage(cmd, stdout)
		return ExitOK, false
	}
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	switch {
	case flags.NArg() > positional:
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[positional:], " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	case flags.NArg() < positional:
		fmt.Fprintln(stderr, "missing arguments")
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}
