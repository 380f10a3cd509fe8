package editor

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"quizjson/internal/export"
)

// renderHeader renders the title line.
func renderHeader(lawBase int, outputDir string, noColor bool) string {
	line := "quizjson | law " + strconv.Itoa(lawBase) + " | " + export.FileName(lawBase)
	if outputDir != "" && outputDir != "." {
		line += " in " + outputDir
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the counts line for the current preview.
func renderSummary(state State, noColor bool) string {
	line := "Questions: " + strconv.Itoa(state.Stats.Questions) +
		" Complete: " + strconv.Itoa(state.Stats.Complete) +
		" Incomplete: " + strconv.Itoa(state.Stats.Incomplete)
	if state.Stale() {
		line += " (updating)"
	}
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderStatus renders the notification line while it is active.
func renderStatus(state State, now time.Time, noColor bool) string {
	if !state.Status.Active(now) {
		return ""
	}
	return state.Status.Render(noColor)
}

// renderHelp renders the key help line.
func renderHelp(keys KeyMap, noColor bool) string {
	parts := make([]string, 0, len(keys.bindings()))
	for _, binding := range keys.bindings() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return stylize(strings.Join(parts, " | "), noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
