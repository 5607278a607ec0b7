// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Velichko

// Package adapter provides transport-layer abstractions for communicating
// with the spellsync remote backend: an object store for practice recordings
// and a REST data service for attempts, scheduler state, and reward points.
//
// The primary abstraction is [RemoteService], which decouples the sync
// orchestrator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteService]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/avelichko/spellsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_service_mock.go -package=mock

// ObjectEntry is one stored object returned by a storage listing.
type ObjectEntry struct {
	// Name is the object name relative to the listed prefix.
	Name string `json:"name"`

	// CreatedAt is when the object was stored.
	CreatedAt time.Time `json:"created_at"`
}

// RemoteService defines transport-agnostic communication with the spellsync
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type RemoteService interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Ping performs a lightweight reachability check against the backend.
	// A nil return means the remote service answered.
	Ping(ctx context.Context) error

	// UploadRecording stores a practice recording under the given object key
	// and returns the remote path of the stored object. The key must follow
	// the {ownerId}/{listId}/{wordId}_{timestampMillis}.{ext} contract
	// produced by [models.AudioObjectKey]; the backend authorises the upload
	// by its first path segment.
	UploadRecording(ctx context.Context, key string, data []byte) (string, error)

	// ListRecordings lists stored objects under the given key prefix. Used
	// before an upload to detect recordings that already reached the remote
	// store on an earlier, interrupted pass.
	ListRecordings(ctx context.Context, prefix string) ([]ObjectEntry, error)

	// InsertAttempt appends one practice attempt to the remote attempts
	// table. Returns [ErrConflict] (wrapped) if the remote rejects it as a
	// duplicate.
	InsertAttempt(ctx context.Context, attempt models.RemoteAttempt) error

	// AttemptExists reports whether an attempt with the given dedupe key
	// (child, word, startedAt) is already recorded remotely.
	AttemptExists(ctx context.Context, childID, wordID string, startedAt time.Time) (bool, error)

	// GetSchedulerState fetches the spaced-repetition record for one
	// (child, word) pair. Returns nil without error when no record exists.
	GetSchedulerState(ctx context.Context, childID, wordID string) (*models.SchedulerState, error)

	// UpsertSchedulerState creates or replaces the spaced-repetition record
	// keyed by (child, word).
	UpsertSchedulerState(ctx context.Context, state models.SchedulerState) error

	// ApplyStarTransaction applies one reward-point delta through the remote
	// rpc. The delta may be negative.
	ApplyStarTransaction(ctx context.Context, tx models.StarTransaction) error
}
