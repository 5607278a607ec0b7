// Package backoff computes retry delays for queue replay.
//
// Delays grow exponentially with the retry index and carry ±25% uniform
// jitter so that many queued items retried after a reconnect do not hammer
// the remote service in lockstep.
package backoff

import (
	"math/rand"
	"time"
)

// DefaultBase is the delay before the first retry, prior to jitter.
const DefaultBase = time.Second

// Delay returns the sleep duration before retry number attempt (0-based).
//
// The expected value is base * 2^attempt; the result is uniformly jittered
// within ±25% of that and floored to whole milliseconds. Negative attempt
// values are treated as 0.
func Delay(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		base = DefaultBase
	}
	if attempt < 0 {
		attempt = 0
	}

	expected := float64(base) * float64(uint64(1)<<uint(attempt))
	jitter := 0.75 + rand.Float64()*0.5
	ms := int64(expected * jitter / float64(time.Millisecond))

	return time.Duration(ms) * time.Millisecond
}
