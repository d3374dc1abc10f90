package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"quizbank/internal/session"
	"quizbank/internal/wrongnote"
)

var menuChoices = []string{"1", "2", "3", "4", "5", "6", "0"}

// runMenu builds the handler for the menu command.
func runMenu(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}
		env, err := openEnv(*configPath, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Menu failed: %v\n", err)
			return ExitError
		}
		defer env.Close()

		if err := env.menu(context.Background(), newInputReader(), stdout); err != nil {
			fmt.Fprintf(stderr, "Menu failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// menu runs the main loop. The correction context lives here so it survives
// from one session to the post-session correction, and is reset whenever a
// new session starts.
func (e *appEnv) menu(ctx context.Context, reader *bufio.Reader, stdout io.Writer) error {
	var anchor session.Correction
	for {
		printMenu(stdout)
		choice, err := promptChoice(reader, stdout, "Choose", menuChoices)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(stdout, "\nBye.")
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "0":
			fmt.Fprintln(stdout, "Bye.")
			return nil
		case "1", "2", "3":
			mode := map[string]string{"1": modeAll, "2": modeLastFailed, "3": modeFailed}[choice]
			s, err := e.drill(ctx, mode, 0, reader, stdout)
			if err != nil {
				fmt.Fprintf(stdout, "Drill failed: %v\n", err)
				continue
			}
			if s != nil {
				anchor = s.Correction()
			}
		case "4":
			e.author(reader, stdout)
		case "5":
			if err := e.exportNote(e.cfg.WrongNote, wrongnote.FormatMarkdown, stdout); err != nil {
				fmt.Fprintf(stdout, "Note failed: %v\n", err)
			}
		case "6":
			e.correctLast(&anchor, reader, stdout)
		}
	}
}

func printMenu(stdout io.Writer) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "==============================")
	fmt.Fprintln(stdout, "  quizbank")
	fmt.Fprintln(stdout, "==============================")
	fmt.Fprintln(stdout, "1. Drill all items")
	fmt.Fprintln(stdout, "2. Drill recently failed items")
	fmt.Fprintln(stdout, "3. Drill failed items (most missed first)")
	fmt.Fprintln(stdout, "4. Add items")
	fmt.Fprintln(stdout, "5. Export wrong note")
	fmt.Fprintln(stdout, "6. Correct the last answer")
	fmt.Fprintln(stdout, "0. Quit")
	fmt.Fprintln(stdout, "==============================")
}

// correctLast asks whether the last answer should count as correct and
// applies the matching correction.
func (e *appEnv) correctLast(anchor *session.Correction, reader *bufio.Reader, stdout io.Writer) {
	if !anchor.Pending() {
		fmt.Fprintln(stdout, "There is no recent answer to correct.")
		return
	}
	addAsAnswer, err := promptYesNo(reader, stdout,
		fmt.Sprintf("Add %q as a correct answer? (no treats it as a typo)", anchor.Answer), false)
	if err != nil {
		fmt.Fprintf(stdout, "Correction cancelled: %v\n", err)
		return
	}
	item := anchor.Item
	result, err := session.CorrectLast(e.store, anchor, addAsAnswer)
	if err != nil {
		e.logger.Error("correct last answer", "result", result.String(), "error", err)
		fmt.Fprintf(stdout, "Could not save correction: %v\n", err)
	}
	switch result {
	case session.CorrectionAdded:
		fmt.Fprintf(stdout, "Added as a correct answer (misses now %d).\n", item.WrongCount)
	case session.CorrectionTypo:
		fmt.Fprintf(stdout, "Treated as a typo (misses now %d).\n", item.WrongCount)
	case session.CorrectionAlreadyRegistered:
		fmt.Fprintln(stdout, "That answer is already registered.")
	default:
		fmt.Fprintln(stdout, "There is no recent answer to correct.")
	}
}
