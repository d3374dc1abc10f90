package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"quizbank/internal/quiz"
	"quizbank/internal/session"
)

const (
	markerLeave  = ":*"
	markerImport = ":$"

	defaultImportFile = "new_quiz.txt"
	questionPreview   = 40
)

// runAdd builds the handler for the add command.
func runAdd(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}
		env, err := openEnv(*configPath, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Add failed: %v\n", err)
			return ExitError
		}
		defer env.Close()

		env.author(newInputReader(), stdout)
		return ExitOK
	}
}

// runImport builds the handler for the import command.
func runImport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, flags, args, 1, stdout, stderr); !ok {
			return code
		}
		env, err := openEnv(*configPath, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}
		defer env.Close()

		if _, err := env.importFile(flags.Arg(0), stdout); err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// runImportBatch builds the handler for the import-batch command.
func runImportBatch(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, flags, args, 1, stdout, stderr); !ok {
			return code
		}
		env, err := openEnv(*configPath, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}
		defer env.Close()

		path := flags.Arg(0)
		file, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stdout, "File not found: %s\n", path)
			fmt.Fprintln(stdout, "merged: 0 added, 0 updated")
			return ExitOK
		}
		if err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}
		defer file.Close()

		blocks, err := quiz.ParseBatch(file)
		if err != nil {
			fmt.Fprintf(stderr, "Import failed: read %s: %v\n", path, err)
			return ExitError
		}
		summary, err := env.store.Import(quiz.UnionMerge{}, blocks)
		fmt.Fprintf(stdout, "merged: %d added, %d updated\n", summary.Created, summary.Updated)
		if err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// author runs the interactive authoring loop. Lines accumulate into a block
// until ":+" saves it; end of input leaves without saving the pending block.
func (e *appEnv) author(reader *bufio.Reader, stdout io.Writer) {
	fmt.Fprintln(stdout, "--- Add items ---")
	fmt.Fprintln(stdout, "commands: :+ save, :* leave, :$ [file] import, := a || b answers, :! hint")

	var lines []string
	for {
		fmt.Fprint(stdout, "> ")
		line, err := session.ReadLine(reader)
		if err != nil && (line == "" || err != io.EOF) {
			fmt.Fprintln(stdout, "\nInput ended; leaving without saving.")
			return
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, markerImport):
			path := strings.TrimSpace(trimmed[len(markerImport):])
			if path == "" {
				path = defaultImportFile
			}
			if _, importErr := e.importFile(path, stdout); importErr != nil {
				fmt.Fprintf(stdout, "Import failed: %v\n", importErr)
			}
			lines = nil
		case strings.HasPrefix(trimmed, quiz.MarkerBoundary):
			e.saveBlock(strings.Join(lines, "\n"), stdout)
			lines = nil
		case strings.HasPrefix(trimmed, markerLeave):
			fmt.Fprintln(stdout, "Leaving add mode.")
			return
		case strings.HasPrefix(trimmed, quiz.MarkerAnswers):
			answers := quiz.SplitAnswers(trimmed[len(quiz.MarkerAnswers):])
			fmt.Fprintf(stdout, "(answers) %s\n", session.JoinAnswers(answers))
			lines = append(lines, line)
		default:
			lines = append(lines, line)
		}

		if err == io.EOF {
			fmt.Fprintln(stdout, "\nInput ended; leaving without saving.")
			return
		}
	}
}

// saveBlock merges one authored block into the store.
func (e *appEnv) saveBlock(block string, stdout io.Writer) {
	result, err := e.store.Upsert(quiz.ParseBlock(block))
	fmt.Fprintln(stdout, describeMerge(result))
	if err != nil {
		fmt.Fprintf(stdout, "Could not save: %v\n", err)
	}
}

// importFile merges every block of a text file into the store. A missing
// file is reported and imports nothing.
func (e *appEnv) importFile(path string, stdout io.Writer) (quiz.MergeSummary, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stdout, "File not found: %s\n", path)
		return quiz.MergeSummary{}, err
	}
	if err != nil {
		return quiz.MergeSummary{}, err
	}

	var blocks []quiz.Parsed
	for block := range quiz.SplitBlocks(string(data)) {
		if parsed := quiz.ParseBlock(block); !parsed.Empty() {
			blocks = append(blocks, parsed)
		}
	}
	fmt.Fprintf(stdout, "Found %d blocks in %s.\n", len(blocks), path)
	summary, err := e.store.Import(quiz.AppendMerge{}, blocks)
	for i, result := range summary.Results {
		fmt.Fprintf(stdout, "[%02d] %s\n", i+1, describeMerge(result))
	}
	fmt.Fprintf(stdout, "%d created, %d updated, %d unchanged, %d skipped\n",
		summary.Created, summary.Updated, summary.Unchanged, summary.Skipped)
	return summary, err
}

// describeMerge renders a merge outcome for the user.
func describeMerge(result quiz.MergeResult) string {
	switch result.Outcome {
	case quiz.OutcomeCreated:
		return fmt.Sprintf("Created %q with answers %s", preview(result.Item.Question), session.JoinAnswers(result.Item.Answers))
	case quiz.OutcomeUpdated:
		return fmt.Sprintf("Updated %q, added %s", preview(result.Item.Question), session.JoinAnswers(result.Added))
	case quiz.OutcomeUnchanged:
		return fmt.Sprintf("Unchanged %q, answers already registered", preview(result.Item.Question))
	default:
		return "Skipped: a question and at least one answer are required"
	}
}

// preview flattens a question to one short line.
func preview(question string) string {
	flat := []rune(strings.Join(strings.Fields(question), " "))
	if len(flat) <= questionPreview {
		return string(flat)
	}
	return string(flat[:questionPreview-3]) + "..."
}
