package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"quizbank/internal/quiz"
)

// Document keys used by the two persisted files.
const (
	KeyQuiz       = "quiz"
	KeyLastFailed = "last_failed"
)

// ErrMalformedDocument indicates the file exists but is not a valid document.
var ErrMalformedDocument = errors.New("malformed quiz document")

// Document is a JSON file holding one item list under a fixed key.
type Document struct {
	Path string
	Key  string
}

// Read returns the items stored under the document key.
// A missing file or key yields no items and no error.
func (d Document) Read() ([]*quiz.Item, error) {
	if d.Path == "" {
		return nil, errors.New("document path is required")
	}
	data, err := os.ReadFile(d.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read %s", d.Path)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrapf(ErrMalformedDocument, "%s: %v", d.Path, err)
	}
	raw, ok := payload[d.Key]
	if !ok {
		return nil, nil
	}
	var items []*quiz.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(ErrMalformedDocument, "%s: key %q: %v", d.Path, d.Key, err)
	}
	return items, nil
}

// Load reads the document, downgrading malformed or unreadable files to an
// empty item list with a logged warning.
func (d Document) Load(logger *slog.Logger) []*quiz.Item {
	items, err := d.Read()
	if err != nil {
		logger.Warn("loading empty quiz list", "path", d.Path, "key", d.Key, "error", err)
		return nil
	}
	return items
}

// Write persists items under the document key using an atomic rename.
func (d Document) Write(items []*quiz.Item) error {
	if d.Path == "" {
		return errors.New("document path is required")
	}
	if items == nil {
		items = []*quiz.Item{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "encode items")
	}
	document := d.siblings()
	document[d.Key] = encoded
	payload, err := json.MarshalIndent(document, "", "    ")
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	if err := os.MkdirAll(filepath.Dir(d.Path), 0o755); err != nil {
		return errors.Wrap(err, "create document directory")
	}
	tmpPath := d.Path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "open temp document")
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	for _, err := range []error{writeErr, syncErr, closeErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return errors.Wrapf(err, "write %s", d.Path)
		}
	}
	if err := os.Rename(tmpPath, d.Path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "replace %s", d.Path)
	}
	return nil
}

// siblings returns the other top-level keys of the current file so a write
// only replaces the document key.
func (d Document) siblings() map[string]json.RawMessage {
	document := map[string]json.RawMessage{}
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return document
	}
	if err := json.Unmarshal(data, &document); err != nil || document == nil {
		return map[string]json.RawMessage{}
	}
	return document
}
