package editor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizjson/internal/quiz"
)

// tableStyles returns table styles for the preview.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the preview columns for an unknown width.
func defaultColumns() []table.Column {
	return columnsForWidth(100)
}

// columnsForWidth sizes the question and answer columns to fit width.
func columnsForWidth(width int) []table.Column {
	const fixed = 4 + 10 + 12 + 8
	flexible := max(width-fixed, 30)
	question := flexible * 2 / 3
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: question},
		{Title: "Correct", Width: flexible - question},
		{Title: "Incorrect", Width: 10},
		{Title: "Status", Width: 12},
	}
}

// rowsForResult converts parsed records into table rows.
func rowsForResult(result quiz.Result) []table.Row {
	rows := make([]table.Row, 0, len(result.Records))
	for i, record := range result.Records {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			formatText(record.Question),
			formatText(record.CorrectAnswer),
			strconv.Itoa(len(record.IncorrectAnswers)) + "/" + strconv.Itoa(quiz.IncorrectAnswerCount),
			recordStatus(record),
		})
	}
	return rows
}

// recordStatus labels a record for the status column.
func recordStatus(record quiz.Record) string {
	switch {
	case record.Complete():
		return "ok"
	case record.CorrectAnswer == "":
		return "no answer"
	default:
		return "incomplete"
	}
}

// formatText collapses whitespace and truncates long text.
func formatText(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	const limit = 80
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}
