package dom

import "time"

// Delay returns a channel that is closed after roughly ms milliseconds.
// The channel is always closed from another goroutine, even for ms <= 0.
// A started delay cannot be cancelled; callers that need to give up early
// select on their own context alongside it.
func Delay(ms int) <-chan struct{} {
	done := make(chan struct{})
	time.AfterFunc(time.Duration(ms)*time.Millisecond, func() {
		close(done)
	})
	return done
}
