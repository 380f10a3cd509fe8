// Package logging builds the zerolog loggers used by long-running commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Environment variables read by FromEnv.
const (
	LevelEnv = "QUIZJSON_LOG_LEVEL"
	FileEnv  = "QUIZJSON_LOG_FILE"
)

// DefaultLevel applies when no level is configured.
const DefaultLevel = zerolog.WarnLevel

// ParseLevel maps a level name to a zerolog level. Empty selects DefaultLevel.
func ParseLevel(raw string) (zerolog.Level, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return DefaultLevel, nil
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q", raw)
	}
	return level, nil
}

// New returns a logger writing to w at level. Terminals get the console
// format; anything else gets JSON lines. Every line carries a run id.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		return zerolog.Nop()
	}
	out := w
	if isTerminal(w) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(level).With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
}

// FromEnv builds a logger from QUIZJSON_LOG_LEVEL and QUIZJSON_LOG_FILE.
// Without a log file it writes to fallback, which may be nil to discard.
// The returned close function releases the log file.
func FromEnv(fallback io.Writer) (zerolog.Logger, func() error, error) {
	level, err := ParseLevel(os.Getenv(LevelEnv))
	if err != nil {
		return zerolog.Nop(), noopClose, err
	}
	path := strings.TrimSpace(os.Getenv(FileEnv))
	if path == "" {
		return New(fallback, level), noopClose, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), noopClose, fmt.Errorf("open log file: %w", err)
	}
	return New(file, level), file.Close, nil
}

func noopClose() error { return nil }

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
