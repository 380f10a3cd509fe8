package editor

import (
	"time"

	"quizjson/internal/quiz"
)

// Event carries a finished preview parse for one edit.
type Event struct {
	Seq    uint64
	Result quiz.Result
}

// EventMsg wraps a parse event for Bubble Tea.
type EventMsg struct {
	Event Event
}

// tickMsg carries a clock tick for status expiry.
type tickMsg time.Time

// request is the text to parse for one edit.
type request struct {
	seq  uint64
	text string
}
