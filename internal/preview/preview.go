// Package preview renders a human-readable summary of parsed quiz records.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizjson/internal/quiz"
)

// DefaultLimit is how many questions a preview shows in full.
const DefaultLimit = 3

// NoQuestionsMessage is shown when nothing could be extracted.
const NoQuestionsMessage = "No questions could be extracted. Check the file format."

// Options configures preview rendering.
type Options struct {
	Limit   int
	NoColor bool
}

// Stats summarises a parse result.
type Stats struct {
	Questions   int
	Complete    int
	Incomplete  int
	Diagnostics int
}

// StatsFor counts records and diagnostics in a result.
func StatsFor(result quiz.Result) Stats {
	complete := result.CompleteCount()
	return Stats{
		Questions:   len(result.Records),
		Complete:    complete,
		Incomplete:  len(result.Records) - complete,
		Diagnostics: len(result.Diagnostics),
	}
}

// String renders the stats on one line.
func (s Stats) String() string {
	line := fmt.Sprintf("Questions: %d  Complete: %d  Incomplete: %d", s.Questions, s.Complete, s.Incomplete)
	if s.Diagnostics > 0 {
		line += fmt.Sprintf("  Dropped: %d", s.Diagnostics)
	}
	return line
}

// Render writes the preview for records to w.
func Render(w io.Writer, records []quiz.Record, opts Options) error {
	_, err := io.WriteString(w, Format(records, opts))
	return err
}

// Format returns the preview text for records.
func Format(records []quiz.Record, opts Options) string {
	if len(records) == 0 {
		return stylize(NoQuestionsMessage, opts.NoColor, lipgloss.Color("214")) + "\n"
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var b strings.Builder
	b.WriteString(stylize(fmt.Sprintf("Found %d questions", len(records)), opts.NoColor, lipgloss.Color("33")))
	b.WriteString("\n")
	shown := min(len(records), limit)
	for i := 0; i < shown; i++ {
		writeRecord(&b, i, records[i], opts.NoColor)
	}
	if rest := len(records) - shown; rest > 0 {
		b.WriteString("\n")
		b.WriteString(stylize(fmt.Sprintf("... and %d more questions", rest), opts.NoColor, lipgloss.Color("242")))
		b.WriteString("\n")
	}
	return b.String()
}

// writeRecord renders one question and its answers.
func writeRecord(b *strings.Builder, index int, record quiz.Record, noColor bool) {
	b.WriteString("\n")
	b.WriteString(stylizeBold(fmt.Sprintf("Question %d: %s", index+1, record.Question), noColor))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(stylize("✓ "+record.CorrectAnswer, noColor, lipgloss.Color("42")))
	b.WriteString("\n")
	for _, answer := range record.IncorrectAnswers {
		b.WriteString("  ")
		b.WriteString(stylize("✗ "+answer, noColor, lipgloss.Color("160")))
		b.WriteString("\n")
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func stylizeBold(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}
