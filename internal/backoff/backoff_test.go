package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelay_WithinJitterBounds(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= 6; attempt++ {
		expected := float64(base) * float64(int64(1)<<attempt)
		lo := time.Duration(0.75*expected) - time.Millisecond
		hi := time.Duration(1.25*expected) + time.Millisecond

		// jitter is random, so sample a few times per attempt index
		for i := 0; i < 50; i++ {
			d := Delay(base, attempt)
			require.GreaterOrEqual(t, d, lo, "attempt %d", attempt)
			require.LessOrEqual(t, d, hi, "attempt %d", attempt)
		}
	}
}

func TestDelay_GrowsInExpectation(t *testing.T) {
	base := 50 * time.Millisecond

	// max of attempt n is 1.25*base*2^n, min of attempt n+2 is 0.75*base*2^(n+2):
	// the min two steps up always exceeds the max, so ordering is deterministic.
	for attempt := 0; attempt < 5; attempt++ {
		lower := Delay(base, attempt)
		higher := Delay(base, attempt+2)
		assert.Greater(t, higher, lower)
	}
}

func TestDelay_FlooredToMilliseconds(t *testing.T) {
	d := Delay(100*time.Millisecond, 3)
	assert.Zero(t, d%time.Millisecond)
}

func TestDelay_DefensiveInputs(t *testing.T) {
	// non-positive base falls back to DefaultBase
	d := Delay(0, 0)
	assert.GreaterOrEqual(t, d, time.Duration(0.75*float64(DefaultBase))-time.Millisecond)

	// negative attempt is clamped to 0
	d = Delay(100*time.Millisecond, -3)
	assert.LessOrEqual(t, d, 125*time.Millisecond+time.Millisecond)
}
