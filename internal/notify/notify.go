// Package notify delivers short status messages to the user.
package notify

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DefaultDuration is how long a status message stays visible.
const DefaultDuration = 3 * time.Second

// Level classifies a status message.
type Level int

const (
	// Info reports a successful action.
	Info Level = iota
	// Warn reports an action that produced nothing or was refused.
	Warn
)

// Notifier shows status messages.
type Notifier interface {
	Notify(level Level, text string)
}

// Message is a status message that expires.
type Message struct {
	Level   Level
	Text    string
	Expires time.Time
}

// NewMessage builds a message visible for DefaultDuration from now.
func NewMessage(level Level, text string, now time.Time) Message {
	return Message{Level: level, Text: text, Expires: now.Add(DefaultDuration)}
}

// Active reports whether the message is still visible at now.
func (m Message) Active(now time.Time) bool {
	return m.Text != "" && now.Before(m.Expires)
}

// Render styles the message text.
func (m Message) Render(noColor bool) string {
	return Style(m.Level, m.Text, noColor)
}

// Style renders text with the color for level.
func Style(level Level, text string, noColor bool) string {
	if noColor {
		return text
	}
	color := lipgloss.Color("42")
	if level == Warn {
		color = lipgloss.Color("214")
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// Writer prints status messages as lines on a writer.
type Writer struct {
	w       io.Writer
	noColor bool
}

// NewWriter returns a Notifier that prints to w.
func NewWriter(w io.Writer, noColor bool) *Writer {
	return &Writer{w: w, noColor: noColor}
}

// Notify prints a styled status line.
func (n *Writer) Notify(level Level, text string) {
	if n == nil || n.w == nil {
		return
	}
	fmt.Fprintln(n.w, Style(level, text, n.noColor))
}
