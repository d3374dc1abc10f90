package quiz

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a stored item.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("quiz validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks raw items as loaded from a document, before they are
// indexed into a collection.
func Validate(items []*Item) error {
	collector := &issueCollector{}
	seen := map[string]int{}
	for i, item := range items {
		prefix := fmt.Sprintf("quiz[%d]", i)
		if item == nil {
			collector.add(prefix, "is null")
			continue
		}
		key := item.Key()
		if key == "" {
			collector.add(prefix+".question", "is required")
		} else if first, exists := seen[key]; exists {
			collector.add(prefix+".question", fmt.Sprintf("duplicates quiz[%d]", first))
		} else {
			seen[key] = i
		}

		if len(item.Answers) == 0 {
			collector.add(prefix+".answers", "must include at least one entry")
		}
		answers := map[string]struct{}{}
		for answerIndex, answer := range item.Answers {
			field := fmt.Sprintf("%s.answers[%d]", prefix, answerIndex)
			if strings.TrimSpace(answer) == "" {
				collector.add(field, "is required")
				continue
			}
			if _, dup := answers[answer]; dup {
				collector.add(field, fmt.Sprintf("duplicate answer %q", answer))
			}
			answers[answer] = struct{}{}
		}

		if item.WrongCount < 0 {
			collector.add(prefix+".wrong_count", fmt.Sprintf("must not be negative (got %d)", item.WrongCount))
		}
		if strings.Contains(item.Hint, "\n") {
			collector.add(prefix+".hint", "must be a single line")
		}
	}
	return collector.result()
}
