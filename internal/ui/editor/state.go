package editor

import (
	"quizjson/internal/notify"
	"quizjson/internal/preview"
	"quizjson/internal/quiz"
)

// State captures the editor state derived from the text.
type State struct {
	// Requested is the sequence number of the latest edit.
	Requested uint64
	// Applied is the sequence number of the result on screen.
	Applied uint64
	Result  quiz.Result
	Stats   preview.Stats
	Status  notify.Message
}

// Stale reports whether the preview lags behind the text.
func (s State) Stale() bool {
	return s.Requested != s.Applied
}
