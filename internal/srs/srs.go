// Package srs implements the spaced-repetition scheduler ("SM-2-lite") as
// two pure transition functions over a small state tuple.
//
// Both the online review path and the offline queue replay use the same
// functions: the queue stores outcomes as intents and recomputes from the
// authoritative remote state at flush time, which keeps concurrent
// multi-device updates correct.
package srs

import (
	"math"
	"time"
)

// MinEase is the floor the ease factor never drops below.
const MinEase = 1.3

// State is the scheduler tuple a review transition operates on. The due
// date is derived from IntervalDays, not part of the core state.
type State struct {
	Ease         float64
	IntervalDays int
	Reps         int
	Lapses       int
}

// DefaultState models the first exposure of a word: no reviews yet,
// immediately due.
func DefaultState() State {
	return State{Ease: 2.5, IntervalDays: 0, Reps: 0, Lapses: 0}
}

// OnSuccess advances the state after a correct first-try answer.
//
// The new interval is computed with the *new* ease (after the +0.1 bump),
// not the old one.
func OnSuccess(s State) State {
	ease := math.Max(MinEase, s.Ease+0.1)

	interval := 1
	if s.IntervalDays > 0 {
		interval = int(math.Round(float64(s.IntervalDays) * ease))
	}

	return State{
		Ease:         ease,
		IntervalDays: interval,
		Reps:         s.Reps + 1,
		Lapses:       s.Lapses,
	}
}

// OnMiss resets the interval after a miss: the word becomes due today and
// the ease drops by 0.2, floored at MinEase. Reps are kept.
func OnMiss(s State) State {
	return State{
		Ease:         math.Max(MinEase, s.Ease-0.2),
		IntervalDays: 0,
		Reps:         s.Reps,
		Lapses:       s.Lapses + 1,
	}
}

// Due derives the review due date: today plus the interval. An interval of
// 0 means the word is due today. The time component is truncated to
// midnight UTC so the value behaves as a calendar date.
func Due(s State, today time.Time) time.Time {
	day := today.UTC().Truncate(24 * time.Hour)
	return day.AddDate(0, 0, s.IntervalDays)
}
