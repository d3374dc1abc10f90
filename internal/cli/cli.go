package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizbank <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-13s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quizbank <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .quizbank/config.yml", []string{
		"quizbank init [--config <path>]",
	}, runInit),
	command("drill", "Run a drill session", []string{
		"quizbank drill [--mode all|failed|last-failed] [--seed <n>] [--config <path>]",
	}, runDrill),
	command("add", "Author items interactively", []string{
		"quizbank add [--config <path>]",
	}, runAdd),
	command("import", "Import items from a text block file", []string{
		"quizbank import [--config <path>] <file>",
	}, runImport),
	command("import-batch", "Import items from an == batch file", []string{
		"quizbank import-batch [--config <path>] <file>",
	}, runImportBatch),
	command("failed", "List failed items by miss count", []string{
		"quizbank failed [--config <path>]",
	}, runFailed),
	command("note", "Export failed items as a wrong note", []string{
		"quizbank note [--format md|html] [--output <path>] [--config <path>]",
	}, runNote),
	command("browse", "Browse failed items in a table", []string{
		"quizbank browse [--config <path>]",
	}, runBrowse),
	command("validate", "Validate config and the quiz store", []string{
		"quizbank validate [--config <path>]",
	}, runValidate),
	command("stats", "Show recent session history", []string{
		"quizbank stats [--limit <n>] [--config <path>]",
	}, runStats),
	command("menu", "Interactive main menu", []string{
		"quizbank menu [--config <path>]",
	}, runMenu),
}
