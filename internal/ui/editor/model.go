// Package editor implements the interactive quiz editor: a text area with a
// live preview that is re-parsed shortly after each edit.
package editor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"quizjson/internal/debounce"
	"quizjson/internal/export"
	"quizjson/internal/quiz"
	"quizjson/internal/source"
)

// DefaultDelay is the pause after the last keystroke before re-parsing.
const DefaultDelay = 300 * time.Millisecond

// Options configures the editor.
type Options struct {
	LawBase      int
	OutputDir    string
	NoColor      bool
	Delay        time.Duration
	TickInterval time.Duration
	// Text is loaded into the editor on start.
	Text   string
	Copier export.Copier
	Now    func() time.Time
	Logger zerolog.Logger
}

// Model is the Bubble Tea model of the editor.
type Model struct {
	input  textarea.Model
	table  table.Model
	keys   KeyMap
	state  State
	events chan Event
	parser *debounce.Debouncer[request]
	seq    uint64
	opts   Options
}

// NewModel builds an editor model. Background parses stop when ctx ends or
// Close is called.
func NewModel(ctx context.Context, opts Options) Model {
	if opts.LawBase < 1 {
		opts.LawBase = export.DefaultLawBase
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 500 * time.Millisecond
	}
	if opts.Copier == nil {
		opts.Copier = export.NewClipboard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	events := make(chan Event, 16)
	parser := debounce.New(ctx, opts.Delay, func(taskCtx context.Context, req request) {
		result := quiz.Parse(req.text, quiz.Lenient)
		select {
		case events <- Event{Seq: req.seq, Result: result}:
		case <-taskCtx.Done():
		}
	})

	input := textarea.New()
	input.Placeholder = "Paste quiz text: a question ending in ?, the correct answer, then four incorrect answers."
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetWidth(100)
	input.SetHeight(12)
	input.Focus()

	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(8),
	)
	t.SetStyles(tableStyles(opts.NoColor))

	m := Model{
		input:  input,
		table:  t,
		keys:   DefaultKeyMap(),
		events: events,
		parser: parser,
		opts:   opts,
	}
	if opts.Text != "" {
		m.input.SetValue(opts.Text)
		m.reparseNow()
	}
	return m
}

// Init starts the cursor blink, the clock, and waits for the first parse.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, waitForEvent(m.events), tick(m.opts.TickInterval))
}

// Update handles keys, parse results, ticks, and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	case EventMsg:
		m.apply(typed.Event)
		return m, waitForEvent(m.events)
	case tickMsg:
		return m, tick(m.opts.TickInterval)
	case tea.KeyMsg:
		switch {
		case key.Matches(typed, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(typed, m.keys.Export):
			m.exportFile()
			return m, nil
		case key.Matches(typed, m.keys.Copy):
			m.copyJSON()
			return m, nil
		case key.Matches(typed, m.keys.Example):
			m.input.SetValue(source.Example)
			m.reparseNow()
			return m, nil
		case key.Matches(typed, m.keys.Clear):
			m.input.Reset()
			m.reparseNow()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.reparse()
	}
	return m, cmd
}

// View renders the editor.
func (m Model) View() string {
	parts := []string{
		renderHeader(m.opts.LawBase, m.opts.OutputDir, m.opts.NoColor),
		m.input.View(),
		renderSummary(m.state, m.opts.NoColor),
		m.table.View(),
	}
	if status := renderStatus(m.state, m.opts.Now(), m.opts.NoColor); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, renderHelp(m.keys, m.opts.NoColor))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Value returns the current editor text.
func (m Model) Value() string {
	return m.input.Value()
}

// State returns the derived editor state.
func (m Model) State() State {
	return m.state
}

// Close stops background parsing.
func (m Model) Close() {
	m.parser.Stop()
}

// reparse schedules a debounced lenient parse of the current text.
func (m *Model) reparse() {
	m.seq++
	m.state.Requested = m.seq
	m.parser.Schedule(request{seq: m.seq, text: m.input.Value()})
}

// reparseNow parses the current text without waiting for the delay.
func (m *Model) reparseNow() {
	m.reparse()
	m.parser.Flush()
}

// apply folds a parse event into the state and the table.
func (m *Model) apply(event Event) {
	state, ok := Reduce(m.state, event)
	if !ok {
		m.opts.Logger.Debug().Uint64("seq", event.Seq).Uint64("latest", m.state.Requested).Msg("stale preview dropped")
		return
	}
	m.state = state
	m.table.SetRows(rowsForResult(state.Result))
}

// resize fits the text area and table to the terminal.
func (m *Model) resize(width, height int) {
	m.input.SetWidth(max(width-2, 20))
	inputHeight := max((height-6)/2, 3)
	m.input.SetHeight(inputHeight)
	m.table.SetWidth(width)
	m.table.SetHeight(max(height-inputHeight-6, 1))
	m.table.SetColumns(columnsForWidth(width))
}

// waitForEvent blocks until a parse result is available.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Event: event}
	}
}

// tick emits a periodic tick so expired notifications disappear.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
