package editor

import "quizjson/internal/preview"

// Reduce applies a parse event to state. Results for text that has since
// changed are dropped and reported as not applied.
func Reduce(state State, event Event) (State, bool) {
	if event.Seq != state.Requested {
		return state, false
	}
	state.Applied = event.Seq
	state.Result = event.Result
	state.Stats = preview.StatsFor(event.Result)
	return state, true
}
