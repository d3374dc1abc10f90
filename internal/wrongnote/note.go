// Package wrongnote renders failed items as a study note.
package wrongnote

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"quizbank/internal/quiz"
)

// Format selects the note encoding.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat accepts md, markdown, or html.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected md|html)", value)
	}
}

// Extension returns the file extension conventionally used for f.
func (f Format) Extension() string {
	if f == FormatHTML {
		return ".html"
	}
	return ".md"
}

const title = "Wrong Note"

// Markdown renders items in the given order. Each entry carries its miss
// count, the question in a code fence, an optional quoted hint, and the
// accepted answers as a list.
func Markdown(items []*quiz.Item) string {
	lines := []string{"# " + title + "\n"}
	for i, item := range items {
		fence := fenceFor(item.Question)
		lines = append(lines, fmt.Sprintf("## %d. (missed %s)", i+1, times(item.WrongCount)))
		lines = append(lines, fmt.Sprintf("**Question**\n\n%s\n%s\n%s", fence, item.Question, fence))
		if item.Hint != "" {
			lines = append(lines, "\n> Hint: "+item.Hint)
		}
		lines = append(lines, "\n**Answers**\n")
		for _, answer := range item.Answers {
			lines = append(lines, "- "+answer)
		}
		lines = append(lines, "\n---\n")
	}
	return strings.Join(lines, "\n")
}

// HTML renders the Markdown note as a standalone page.
func HTML(items []*quiz.Item) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(items)), &body); err != nil {
		return "", errors.Wrap(err, "render wrong note")
	}
	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(title))
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

// Render produces the note in format f.
func Render(items []*quiz.Item, f Format) (string, error) {
	if f == FormatHTML {
		return HTML(items)
	}
	return Markdown(items), nil
}

// Write renders the note and writes it to path, creating parent directories.
func Write(path string, items []*quiz.Item, f Format) error {
	content, err := Render(items, f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create note dir for %s", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "write note %s", path)
	}
	return nil
}

func times(n int) string {
	if n == 1 {
		return "1 time"
	}
	return fmt.Sprintf("%d times", n)
}

// fenceFor returns a backtick fence longer than any run inside text.
func fenceFor(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return strings.Repeat("`", max(3, longest+1))
}
