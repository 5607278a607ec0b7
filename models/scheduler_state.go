// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Velichko

package models

import "time"

// SchedulerState is the remote spaced-repetition record, unique per
// (child, word).
//
// Invariants: Ease never drops below 1.3; IntervalDays 0 means the word is
// due today.
type SchedulerState struct {
	ChildID      string    `json:"child_id"`
	WordID       string    `json:"word_id"`
	Ease         float64   `json:"ease"`
	IntervalDays int       `json:"interval_days"`
	DueDate      time.Time `json:"due_date"`
	Reps         int       `json:"reps"`
	Lapses       int       `json:"lapses"`
}
