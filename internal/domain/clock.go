package domain

import "github.com/jonboulle/clockwork"

// clock stamps GeneratedAt on summaries. Package-level so tests can freeze
// time via SetClock; production code uses the real clock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for summary generation. Pass nil to reset
// to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
