package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizbank/internal/config"
)

const defaultLogFile = ".quizbank/quizbank.log"

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}
		reader := newInputReader()

		var targetPath string
		if value := strings.TrimSpace(*configPath); value == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			targetPath = config.ConfigPath(wd)
		} else {
			abs, err := filepath.Abs(value)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			targetPath = abs
		}
		configDir := filepath.Dir(targetPath)
		root := config.RootFromConfigPath(targetPath)

		if info, err := os.Stat(configDir); err == nil && !info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: config directory %q is not a directory\n", configDir)
			return ExitError
		}
		if info, err := os.Stat(targetPath); err == nil {
			if info.IsDir() {
				fmt.Fprintf(stderr, "Init failed: config path %q is a directory\n", targetPath)
				return ExitError
			}
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", targetPath)
			return ExitError
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Init failed: stat config file: %v\n", err)
			return ExitError
		}

		confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Initialize quizbank config in %s?", configDir), true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if !confirm {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}

		storePath, err := promptString(reader, stdout, "Quiz store file", config.DefaultQuizFile)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		logFile, err := promptString(reader, stdout, "Log file", defaultLogFile)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		addGitignore := false
		if isGitRoot(root) {
			answer, err := promptYesNo(reader, stdout, "Add the log and history files to .gitignore?", true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			addGitignore = answer
		}

		if err := config.Scaffold(targetPath, config.ScaffoldOptions{Store: storePath, LogFile: logFile}); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", targetPath)

		if addGitignore {
			added, err := addGitignoreEntries(root, logFile, filepath.Join(config.ConfigDirName, config.DefaultHistory))
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: update .gitignore: %v\n", err)
				return ExitError
			}
			if len(added) > 0 {
				fmt.Fprintf(stdout, "Updated %s (%s)\n", filepath.Join(root, ".gitignore"), strings.Join(added, ", "))
			}
		}
		return ExitOK
	}
}

// isGitRoot reports whether dir holds a git checkout.
func isGitRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
