package quiz

import (
	"fmt"
	"slices"
)

// Outcome classifies what a merge did to the collection.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeUnchanged
	OutcomeUpdated
	OutcomeCreated
)

// String returns a short label for logs and notices.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeUpdated:
		return "updated"
	case OutcomeCreated:
		return "created"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Changed reports whether the collection was modified.
func (o Outcome) Changed() bool {
	return o == OutcomeUpdated || o == OutcomeCreated
}

// MergeResult describes the effect of merging one parsed block.
type MergeResult struct {
	Outcome Outcome
	Added   []string
	Item    *Item
}

// Merger reconciles a parsed block against a collection.
type Merger interface {
	Merge(c *Collection, p Parsed) MergeResult
}

// AppendMerge is the interactive strategy: new answers are appended to the
// stored list in encounter order and a supplied hint replaces the old one.
type AppendMerge struct{}

// Merge applies p to c.
func (AppendMerge) Merge(c *Collection, p Parsed) MergeResult {
	key := Key(p.Question)
	if key == "" || len(p.Answers) == 0 {
		return MergeResult{Outcome: OutcomeSkipped}
	}
	if existing, ok := c.Get(key); ok {
		var added []string
		for _, answer := range p.Answers {
			if existing.AddAnswer(answer) {
				added = append(added, answer)
			}
		}
		if len(added) == 0 {
			return MergeResult{Outcome: OutcomeUnchanged, Item: existing}
		}
		if p.Hint != "" {
			existing.Hint = p.Hint
		}
		return MergeResult{Outcome: OutcomeUpdated, Added: added, Item: existing}
	}

	item := &Item{Question: key, Hint: p.Hint}
	for _, answer := range p.Answers {
		item.AddAnswer(answer)
	}
	_ = c.Add(item)
	return MergeResult{Outcome: OutcomeCreated, Added: slices.Clone(item.Answers), Item: item}
}

// UnionMerge is the batch import strategy: stored answers become the sorted
// union of old and new, and first sightings are inserted in the given order
// with repeated answers collapsed.
type UnionMerge struct{}

// Merge applies p to c.
func (UnionMerge) Merge(c *Collection, p Parsed) MergeResult {
	key := Key(p.Question)
	if key == "" || len(p.Answers) == 0 {
		return MergeResult{Outcome: OutcomeSkipped}
	}
	if existing, ok := c.Get(key); ok {
		union := map[string]struct{}{}
		for _, answer := range existing.Answers {
			union[answer] = struct{}{}
		}
		before := len(union)
		var added []string
		for _, answer := range p.Answers {
			if _, seen := union[answer]; !seen {
				union[answer] = struct{}{}
				added = append(added, answer)
			}
		}
		if len(union) <= before {
			return MergeResult{Outcome: OutcomeUnchanged, Item: existing}
		}
		merged := make([]string, 0, len(union))
		for answer := range union {
			merged = append(merged, answer)
		}
		slices.Sort(merged)
		existing.Answers = merged
		return MergeResult{Outcome: OutcomeUpdated, Added: added, Item: existing}
	}

	item := &Item{Question: key, Hint: p.Hint}
	for _, answer := range p.Answers {
		item.AddAnswer(answer)
	}
	_ = c.Add(item)
	return MergeResult{Outcome: OutcomeCreated, Added: slices.Clone(item.Answers), Item: item}
}

// MergeSummary counts outcomes of a batch merge.
type MergeSummary struct {
	Results   []MergeResult
	Created   int
	Updated   int
	Unchanged int
	Skipped   int
}

// Changed reports whether any block modified the collection.
func (s MergeSummary) Changed() bool {
	return s.Created > 0 || s.Updated > 0
}

// MergeAll applies every block to c in order.
func MergeAll(c *Collection, merger Merger, blocks []Parsed) MergeSummary {
	summary := MergeSummary{Results: make([]MergeResult, 0, len(blocks))}
	for _, block := range blocks {
		result := merger.Merge(c, block)
		summary.Results = append(summary.Results, result)
		switch result.Outcome {
		case OutcomeCreated:
			summary.Created++
		case OutcomeUpdated:
			summary.Updated++
		case OutcomeUnchanged:
			summary.Unchanged++
		default:
			summary.Skipped++
		}
	}
	return summary
}
