package export

import (
	"fmt"
	"strings"

	"quizjson/internal/quiz"
)

// Issue captures a problem with one field of an export document.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more issues found in an export document.
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
	return fmt.Sprintf("export validation failed: %s", strings.Join(parts, "; "))
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

// CheckEntries verifies that entries form a valid export: law numbers start at
// 1 or above and increase by one with no gaps, every text is non-empty, and
// every entry has exactly four incorrect answers.
func CheckEntries(entries []Entry) error {
	collector := &issueCollector{}
	if len(entries) == 0 {
		collector.add("entries", "must include at least one entry")
	}
	for i, entry := range entries {
		prefix := fmt.Sprintf("[%d]", i)
		switch {
		case i == 0 && entry.Law < 1:
			collector.add(prefix+".law", fmt.Sprintf("must be >= 1, got %d", entry.Law))
		case i > 0 && entry.Law != entries[i-1].Law+1:
			collector.add(prefix+".law", fmt.Sprintf("expected %d, got %d", entries[i-1].Law+1, entry.Law))
		}
		if strings.TrimSpace(entry.Question) == "" {
			collector.add(prefix+".question", "is required")
		}
		if strings.TrimSpace(entry.CorrectAnswer) == "" {
			collector.add(prefix+".correctAnswer", "is required")
		}
		if len(entry.IncorrectAnswers) != quiz.IncorrectAnswerCount {
			collector.add(prefix+".incorrectAnswers", fmt.Sprintf("must have %d entries, got %d", quiz.IncorrectAnswerCount, len(entry.IncorrectAnswers)))
		}
		for answerIndex, answer := range entry.IncorrectAnswers {
			if strings.TrimSpace(answer) == "" {
				collector.add(fmt.Sprintf("%s.incorrectAnswers[%d]", prefix, answerIndex), "is required")
			}
		}
	}
	return collector.result()
}
