package session

import (
	"fmt"
	"slices"

	"quizbank/internal/quiz"
)

// Store is the persistence a session needs.
type Store interface {
	Save() error
	DecrementMiss(item *quiz.Item) (int, error)
	LastFailed() []*quiz.Item
	SaveLastFailed(items []*quiz.Item) error
}

// Correction anchors the most recently completed item and the answer given
// for it. It is consumed by the first successful add or typo correction.
type Correction struct {
	Item   *quiz.Item
	Answer string
}

// Pending reports whether there is something left to correct.
func (c *Correction) Pending() bool {
	return c != nil && c.Item != nil && c.Answer != ""
}

func (c *Correction) consume() {
	c.Item = nil
	c.Answer = ""
}

// CorrectionResult describes what a correction did.
type CorrectionResult int

const (
	CorrectionNothing CorrectionResult = iota
	CorrectionAlreadyRegistered
	CorrectionAdded
	CorrectionTypo
)

// String returns a short label for logs.
func (r CorrectionResult) String() string {
	switch r {
	case CorrectionNothing:
		return "nothing"
	case CorrectionAlreadyRegistered:
		return "already_registered"
	case CorrectionAdded:
		return "added"
	case CorrectionTypo:
		return "typo"
	default:
		return fmt.Sprintf("correction(%d)", int(r))
	}
}

// addAnswer registers the anchored answer and forgives one miss.
func addAnswer(store Store, anchor *Correction) (CorrectionResult, error) {
	if !anchor.Pending() {
		return CorrectionNothing, nil
	}
	if anchor.Item.HasAnswer(anchor.Answer) {
		return CorrectionAlreadyRegistered, nil
	}
	anchor.Item.AddAnswer(anchor.Answer)
	_, err := store.DecrementMiss(anchor.Item)
	return CorrectionAdded, err
}

// forgiveTypo forgives one miss without touching the answers.
func forgiveTypo(store Store, anchor *Correction) (CorrectionResult, error) {
	if !anchor.Pending() {
		return CorrectionNothing, nil
	}
	_, err := store.DecrementMiss(anchor.Item)
	return CorrectionTypo, err
}

// CorrectLast applies the out-of-band correction of the last completed item:
// addAsAnswer registers the given answer as valid, otherwise the miss is
// treated as a typo. An added answer also drops the item from the persisted
// failed snapshot. The anchor is consumed unless nothing was done.
func CorrectLast(store Store, anchor *Correction, addAsAnswer bool) (CorrectionResult, error) {
	if !addAsAnswer {
		result, err := forgiveTypo(store, anchor)
		if result == CorrectionTypo {
			anchor.consume()
		}
		return result, err
	}

	item := anchor.Item
	result, err := addAnswer(store, anchor)
	if result != CorrectionAdded {
		return result, err
	}
	anchor.consume()
	snapshot := store.LastFailed()
	trimmed := slices.DeleteFunc(slices.Clone(snapshot), func(candidate *quiz.Item) bool {
		return candidate == item || candidate.Key() == item.Key()
	})
	if len(trimmed) != len(snapshot) {
		if saveErr := store.SaveLastFailed(trimmed); saveErr != nil && err == nil {
			err = saveErr
		}
	}
	return result, err
}
