// Package export projects parsed quiz records into the law-numbered JSON
// documents consumed by test-delivery systems, and reads them back for checks.
package export

import (
	"math"
	"strings"

	"quizjson/internal/quiz"
)

// DefaultLawBase is the first law number when none (or an invalid one) is given.
const DefaultLawBase = 1

// Entry is one exported question. Field order is the JSON field order.
type Entry struct {
	Law              int      `json:"law" yaml:"law"`
	Question         string   `json:"question" yaml:"question"`
	CorrectAnswer    string   `json:"correctAnswer" yaml:"correctAnswer"`
	IncorrectAnswers []string `json:"incorrectAnswers" yaml:"incorrectAnswers"`
}

// ToEntries numbers records sequentially starting at base. Records are not
// validated; callers pass the output of a strict parse. A base below 1 is
// replaced by DefaultLawBase.
func ToEntries(records []quiz.Record, base int) []Entry {
	if base < 1 {
		base = DefaultLawBase
	}
	entries := make([]Entry, 0, len(records))
	for i, record := range records {
		incorrect := make([]string, len(record.IncorrectAnswers))
		copy(incorrect, record.IncorrectAnswers)
		entries = append(entries, Entry{
			Law:              base + i,
			Question:         record.Question,
			CorrectAnswer:    record.CorrectAnswer,
			IncorrectAnswers: incorrect,
		})
	}
	return entries
}

// ParseLawBase reads a starting law number the way a form field is read:
// surrounding whitespace is ignored, an optional sign and the leading digits
// are used, and anything after the digits is ignored ("12abc" is 12). Empty,
// non-numeric, zero, negative, or overflowing input yields DefaultLawBase.
func ParseLawBase(raw string) int {
	value := strings.TrimSpace(raw)
	negative := false
	if value != "" && (value[0] == '+' || value[0] == '-') {
		negative = value[0] == '-'
		value = value[1:]
	}
	n := 0
	digits := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			break
		}
		d := int(r - '0')
		if n > (maxLawBase-d)/10 {
			return DefaultLawBase
		}
		n = n*10 + d
		digits++
	}
	if digits == 0 || negative || n < 1 {
		return DefaultLawBase
	}
	return n
}

// maxLawBase bounds law numbers so they fit every consumer's integer type.
const maxLawBase = math.MaxInt32
