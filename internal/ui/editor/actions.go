package editor

import (
	"errors"
	"fmt"

	"quizjson/internal/export"
	"quizjson/internal/notify"
)

// noQuestionsText is shown when an export finds nothing complete.
const noQuestionsText = "No questions to convert. Check the format."

// exportFile writes the strict export to the output directory.
func (m *Model) exportFile() {
	conv, ok := m.convert()
	if !ok {
		return
	}
	path, err := export.WriteFile(m.opts.OutputDir, conv.Base, conv.Entries)
	if err != nil {
		m.opts.Logger.Error().Err(err).Msg("export failed")
		m.notify(notify.Warn, "Export failed: "+err.Error())
		return
	}
	m.opts.Logger.Info().Str("path", path).Int("questions", len(conv.Entries)).Msg("exported")
	m.notify(notify.Info, fmt.Sprintf("Exported %d questions to %s%s", len(conv.Entries), path, droppedSuffix(conv)))
}

// copyJSON places the strict export on the clipboard.
func (m *Model) copyJSON() {
	conv, ok := m.convert()
	if !ok {
		return
	}
	payload, err := export.Marshal(conv.Entries)
	if err != nil {
		m.notify(notify.Warn, "Copy failed: "+err.Error())
		return
	}
	if err := m.opts.Copier.Copy(string(payload)); err != nil {
		m.opts.Logger.Warn().Err(err).Msg("copy failed")
		if errors.Is(err, export.ErrClipboardUnavailable) {
			m.notify(notify.Warn, "Clipboard unavailable")
			return
		}
		m.notify(notify.Warn, "Copy failed: "+err.Error())
		return
	}
	m.notify(notify.Info, fmt.Sprintf("Copied %d questions to clipboard%s", len(conv.Entries), droppedSuffix(conv)))
}

// convert runs the strict conversion and reports an empty result.
func (m *Model) convert() (export.Conversion, bool) {
	conv, err := export.Convert(m.input.Value(), m.opts.LawBase)
	if err != nil {
		m.notify(notify.Warn, noQuestionsText)
		return conv, false
	}
	return conv, true
}

// notify replaces the status line.
func (m *Model) notify(level notify.Level, text string) {
	m.state.Status = notify.NewMessage(level, text, m.opts.Now())
}

// droppedSuffix mentions incomplete blocks left out of an export.
func droppedSuffix(conv export.Conversion) string {
	if len(conv.Diagnostics) == 0 {
		return ""
	}
	return fmt.Sprintf(" (%d incomplete dropped)", len(conv.Diagnostics))
}
