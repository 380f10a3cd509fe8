package export

import (
	"errors"

	"quizjson/internal/quiz"
)

// ErrNoQuestions is returned when quiz text yields no complete question.
var ErrNoQuestions = errors.New("no questions to convert")

// Conversion is strict-parsed quiz text projected onto law numbers.
type Conversion struct {
	Base        int
	Entries     []Entry
	Diagnostics []quiz.Diagnostic
}

// Convert parses text in strict mode and numbers the complete records from
// base. It returns ErrNoQuestions, together with any diagnostics, when no
// record survives.
func Convert(text string, base int) (Conversion, error) {
	if base < 1 {
		base = DefaultLawBase
	}
	result := quiz.Parse(text, quiz.Strict)
	conv := Conversion{
		Base:        base,
		Entries:     ToEntries(result.Records, base),
		Diagnostics: result.Diagnostics,
	}
	if result.Empty() {
		return conv, ErrNoQuestions
	}
	return conv, nil
}
