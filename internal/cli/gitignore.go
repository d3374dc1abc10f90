package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// addGitignoreEntries appends each path, relative to root, to root/.gitignore
// unless an identical line is already present. It returns the entries added.
func addGitignoreEntries(root string, paths ...string) ([]string, error) {
	gitignorePath := filepath.Join(root, ".gitignore")
	var existing []byte
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = data
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read .gitignore: %w", err)
	}

	present := map[string]bool{}
	for _, line := range strings.Split(string(existing), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var added []string
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		entry, err := gitignoreEntry(root, path)
		if err != nil {
			return nil, err
		}
		if present[entry] {
			continue
		}
		present[entry] = true
		added = append(added, entry)
	}
	if len(added) == 0 {
		return nil, nil
	}

	updated := string(existing)
	if len(updated) > 0 && !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	updated += strings.Join(added, "\n") + "\n"
	if err := os.WriteFile(gitignorePath, []byte(updated), 0o644); err != nil {
		return nil, fmt.Errorf("write .gitignore: %w", err)
	}
	return added, nil
}

// gitignoreEntry turns path into a slash-separated path relative to root.
func gitignoreEntry(root, path string) (string, error) {
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) {
		rel, err := filepath.Rel(root, clean)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", path, err)
		}
		clean = rel
	}
	if clean == "." || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("path %q is outside %s", path, root)
	}
	return filepath.ToSlash(clean), nil
}
