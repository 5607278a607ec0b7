// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Velichko

package models

import "time"

// QueueKind names one of the four durable queues in operations that address
// a queue by name (manual retry, counts).
type QueueKind string

const (
	QueueAttempts         QueueKind = "attempts"
	QueueAudio            QueueKind = "audio"
	QueueSrsUpdates       QueueKind = "srs_updates"
	QueueStarTransactions QueueKind = "star_transactions"
)

// KindCounts holds per-entity row counts for one queue view.
type KindCounts struct {
	Attempts         int `json:"attempts"`
	Audio            int `json:"audio"`
	SrsUpdates       int `json:"srs_updates"`
	StarTransactions int `json:"star_transactions"`
	Total            int `json:"total"`
}

// QueueCounts aggregates the two queue views external consumers care about.
type QueueCounts struct {
	Pending KindCounts `json:"pending"`
	Failed  KindCounts `json:"failed"`
}

// SyncStatus is the read-only snapshot served by the status facade: queue
// counts, the telemetry view of the last/ongoing sync pass, connectivity,
// and the tail of the bounded error log.
type SyncStatus struct {
	Counts             QueueCounts  `json:"counts"`
	SyncInProgress     bool         `json:"sync_in_progress"`
	Online             bool         `json:"online"`
	LastSyncAt         *time.Time   `json:"last_sync_at,omitempty"`
	LastSyncDurationMs int64        `json:"last_sync_duration_ms"`
	RecentErrors       []QueueError `json:"recent_errors,omitempty"`
}

// QueueError is one entry of the telemetry error log.
type QueueError struct {
	At      time.Time `json:"at"`
	Source  string    `json:"source"`
	Message string    `json:"message"`
}
