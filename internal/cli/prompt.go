package cli

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"quizbank/internal/session"
)

// promptString asks for a string value with an optional default.
func promptString(reader *bufio.Reader, out io.Writer, label, defaultValue string) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, defaultValue)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}
		line, err := session.ReadLine(reader)
		if err != nil && err != io.EOF {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" && defaultValue != "" {
			return defaultValue, nil
		}
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// promptYesNo prompts for a yes/no response with a default.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		line, err := session.ReadLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if err == io.EOF {
				return false, fmt.Errorf("invalid response %q", line)
			}
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}

// promptChoice asks until one of choices is entered. End of input yields io.EOF.
func promptChoice(reader *bufio.Reader, out io.Writer, label string, choices []string) (string, error) {
	for {
		fmt.Fprintf(out, "%s: ", label)
		line, err := session.ReadLine(reader)
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		choice := strings.TrimSpace(line)
		if slices.Contains(choices, choice) {
			return choice, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
		fmt.Fprintf(out, "Invalid choice %q; pick one of %s.\n", choice, strings.Join(choices, ", "))
	}
}
