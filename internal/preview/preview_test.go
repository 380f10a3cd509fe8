package preview

import (
	"bytes"
	"strings"
	"testing"

	"quizjson/internal/quiz"
)

// TestFormatEmpty verifies the no-questions message.
func TestFormatEmpty(t *testing.T) {
	got := Format(nil, Options{NoColor: true})
	if got != NoQuestionsMessage+"\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

// TestFormatLimitsQuestions verifies only the first questions are shown.
func TestFormatLimitsQuestions(t *testing.T) {
	text := strings.Repeat("Q?\nA\nB\nC\nD\nE\n", 5)
	result := quiz.Parse(text, quiz.Lenient)
	got := Format(result.Records, Options{NoColor: true})
	if !strings.HasPrefix(got, "Found 5 questions\n") {
		t.Fatalf("expected header, got %q", got)
	}
	if strings.Count(got, "Question ") != DefaultLimit {
		t.Fatalf("expected %d questions shown, got %q", DefaultLimit, got)
	}
	if !strings.Contains(got, "... and 2 more questions") {
		t.Fatalf("expected remainder line, got %q", got)
	}
}

// TestRenderAnswers verifies correct and incorrect answer markers.
func TestRenderAnswers(t *testing.T) {
	result := quiz.Parse("Q1?\nA\nB\nC\n", quiz.Lenient)
	var out bytes.Buffer
	if err := Render(&out, result.Records, Options{Limit: 10, NoColor: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Found 1 questions\n\nQuestion 1: Q1?\n  ✓ A\n  ✗ B\n  ✗ C\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

// TestStatsFor verifies summary counts.
func TestStatsFor(t *testing.T) {
	lenient := StatsFor(quiz.Parse("Q1?\nA\nB\nC\nD\nE\nQ2?\nA\n", quiz.Lenient))
	if lenient.Questions != 2 || lenient.Complete != 1 || lenient.Incomplete != 1 {
		t.Fatalf("unexpected stats %+v", lenient)
	}
	strict := StatsFor(quiz.Parse("Q1?\nA\nB\nC\nD\nE\nQ2?\nA\n", quiz.Strict))
	if strict.Questions != 1 || strict.Diagnostics != 1 {
		t.Fatalf("unexpected stats %+v", strict)
	}
	if !strings.Contains(strict.String(), "Dropped: 1") {
		t.Fatalf("expected dropped count, got %q", strict.String())
	}
}
