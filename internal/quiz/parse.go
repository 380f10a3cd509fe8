package quiz

import (
	"fmt"
	"strings"
)

// Parse splits quiz text into question records.
//
// A non-empty line ending in "?" opens a new question and closes the previous
// one. The first following line is the correct answer, the next four are the
// incorrect answers, and anything after that is dropped. Blank lines are
// ignored everywhere, as is text before the first question.
//
// In Lenient mode every opened question is returned. In Strict mode only
// complete records are returned and each incomplete one yields a Diagnostic.
// Parse is pure: the same text always produces the same Result.
func Parse(text string, mode Mode) Result {
	var (
		result  Result
		current *Record
	)
	finish := func() {
		if current == nil {
			return
		}
		record := *current
		current = nil
		if mode == Strict && !record.Complete() {
			result.Diagnostics = append(result.Diagnostics, diagnose(record))
			return
		}
		if record.Question != "" {
			result.Records = append(result.Records, record)
		}
	}

	for index, raw := range splitLines(text) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isQuestion(line) {
			finish()
			current = &Record{
				Question:         line,
				IncorrectAnswers: make([]string, 0, IncorrectAnswerCount),
				Line:             index + 1,
			}
			continue
		}
		if current == nil {
			continue
		}
		switch {
		case current.CorrectAnswer == "":
			current.CorrectAnswer = line
		case len(current.IncorrectAnswers) < IncorrectAnswerCount:
			current.IncorrectAnswers = append(current.IncorrectAnswers, line)
		}
	}
	finish()
	return result
}

// splitLines splits on "\n" and strips a "\r" left by CRLF line endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// isQuestion reports whether a trimmed line opens a question block.
func isQuestion(line string) bool {
	return strings.HasSuffix(line, "?")
}

// diagnose explains why a record is incomplete.
func diagnose(record Record) Diagnostic {
	reason := "missing correct answer"
	if record.CorrectAnswer != "" {
		reason = fmt.Sprintf("expected %d incorrect answers, got %d", IncorrectAnswerCount, len(record.IncorrectAnswers))
	}
	return Diagnostic{Line: record.Line, Question: record.Question, Reason: reason}
}
