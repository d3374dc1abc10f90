package store

import (
	"log/slog"

	"github.com/pkg/errors"

	"quizbank/internal/quiz"
)

// Store owns the authoritative in-memory collection and its files.
type Store struct {
	quizDoc   Document
	failedDoc Document
	items     *quiz.Collection
	logger    *slog.Logger
}

// Options configures where a store keeps its documents.
type Options struct {
	QuizPath       string
	LastFailedPath string
	Logger         *slog.Logger
}

// Open loads the quiz document. Missing or malformed files yield an empty
// collection; Open only fails on missing configuration.
func Open(opts Options) (*Store, error) {
	if opts.QuizPath == "" {
		return nil, errors.New("quiz path is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		quizDoc:   Document{Path: opts.QuizPath, Key: KeyQuiz},
		failedDoc: Document{Path: opts.LastFailedPath, Key: KeyLastFailed},
		logger:    logger,
	}
	s.items = quiz.NewCollection()
	for _, item := range s.quizDoc.Load(logger) {
		if item == nil {
			continue
		}
		if err := s.items.Add(item); err != nil {
			logger.Warn("dropping duplicate question", "path", opts.QuizPath, "question", item.Key())
		}
	}
	return s, nil
}

// Path returns the main document path.
func (s *Store) Path() string {
	return s.quizDoc.Path
}

// All returns the live collection.
func (s *Store) All() *quiz.Collection {
	return s.items
}

// Save persists the collection. Failures are logged and returned.
func (s *Store) Save() error {
	if err := s.quizDoc.Write(s.items.Items()); err != nil {
		s.logger.Error("save quiz document", "path", s.quizDoc.Path, "error", err)
		return err
	}
	return nil
}

// Upsert merges one authored block with the interactive strategy and
// persists when anything changed.
func (s *Store) Upsert(p quiz.Parsed) (quiz.MergeResult, error) {
	result := quiz.AppendMerge{}.Merge(s.items, p)
	if !result.Outcome.Changed() {
		return result, nil
	}
	s.logger.Debug("quiz item merged", "outcome", result.Outcome.String(), "question", result.Item.Key(), "added", result.Added)
	return result, s.Save()
}

// Import merges a batch of blocks with the given strategy and saves once.
func (s *Store) Import(merger quiz.Merger, blocks []quiz.Parsed) (quiz.MergeSummary, error) {
	summary := quiz.MergeAll(s.items, merger, blocks)
	s.logger.Info("quiz import merged",
		"created", summary.Created,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"skipped", summary.Skipped)
	if !summary.Changed() {
		return summary, nil
	}
	return summary, s.Save()
}

// DecrementMiss lowers an item's miss count by one (never below zero) and
// persists, returning the resulting count.
func (s *Store) DecrementMiss(item *quiz.Item) (int, error) {
	if item == nil {
		return 0, errors.New("item is required")
	}
	item.Forgive()
	s.adopt(item)
	return item.WrongCount, s.Save()
}

// FailedItems returns missed items ranked by miss count.
// The error is quiz.ErrNoItems or quiz.ErrNoneFailed when the list is empty.
func (s *Store) FailedItems() ([]*quiz.Item, error) {
	return s.items.Failed()
}

// LastFailed loads the failed snapshot, resolving entries to live items.
func (s *Store) LastFailed() []*quiz.Item {
	if s.failedDoc.Path == "" {
		return nil
	}
	snapshot := s.failedDoc.Load(s.logger)
	resolved := make([]*quiz.Item, 0, len(snapshot))
	seen := map[string]struct{}{}
	for _, entry := range snapshot {
		if entry == nil || entry.Key() == "" {
			continue
		}
		if _, dup := seen[entry.Key()]; dup {
			continue
		}
		seen[entry.Key()] = struct{}{}
		if live, ok := s.items.Get(entry.Question); ok {
			resolved = append(resolved, live)
			continue
		}
		resolved = append(resolved, entry)
	}
	return resolved
}

// SaveLastFailed replaces the failed snapshot.
func (s *Store) SaveLastFailed(items []*quiz.Item) error {
	if s.failedDoc.Path == "" {
		return nil
	}
	if err := s.failedDoc.Write(items); err != nil {
		s.logger.Error("save failed snapshot", "path", s.failedDoc.Path, "error", err)
		return err
	}
	return nil
}

// Track adopts items that are not yet part of the collection, such as
// snapshot entries whose question was missing from the main document.
func (s *Store) Track(items []*quiz.Item) {
	for _, item := range items {
		s.adopt(item)
	}
}

func (s *Store) adopt(item *quiz.Item) {
	if item == nil || item.Key() == "" || len(item.Answers) == 0 {
		return
	}
	if _, ok := s.items.Get(item.Question); ok {
		return
	}
	_ = s.items.Add(item)
}
