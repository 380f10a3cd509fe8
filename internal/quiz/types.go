package quiz

import "fmt"

// IncorrectAnswerCount is the number of incorrect answers a complete record carries.
const IncorrectAnswerCount = 4

// Mode selects how finished question blocks are filtered.
type Mode int

const (
	// Lenient keeps every question block, complete or not. Used for previews.
	Lenient Mode = iota
	// Strict keeps only complete blocks and diagnoses the rest. Used for export.
	Strict
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Record is one question block extracted from quiz text.
type Record struct {
	Question         string
	CorrectAnswer    string
	IncorrectAnswers []string
	// Line is the 1-based line of the question text in the source.
	Line int
}

// Complete reports whether the record has a correct answer and a full set of
// incorrect answers.
func (r Record) Complete() bool {
	return r.CorrectAnswer != "" && len(r.IncorrectAnswers) == IncorrectAnswerCount
}

// Diagnostic describes a question block dropped in strict mode.
type Diagnostic struct {
	Line     int
	Question string
	Reason   string
}

// String renders the diagnostic as "line N: "question": reason".
func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %q: %s", d.Line, d.Question, d.Reason)
}

// Result is the outcome of a single Parse call.
type Result struct {
	Records     []Record
	Diagnostics []Diagnostic
}

// Empty reports the "no results" outcome.
func (r Result) Empty() bool {
	return len(r.Records) == 0
}

// CompleteCount returns how many records are complete.
func (r Result) CompleteCount() int {
	count := 0
	for _, record := range r.Records {
		if record.Complete() {
			count++
		}
	}
	return count
}
