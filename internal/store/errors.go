// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Velichko

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAttemptNotFound is returned when a query or update targets a queued
	// attempt row that does not exist.
	ErrAttemptNotFound = errors.New("queued attempt was not found")

	// ErrAudioNotFound is returned when a query or update targets a queued
	// audio row that does not exist. The sync pass treats a dangling
	// attempt→audio reference hitting this error as a referential anomaly,
	// not a fatal failure.
	ErrAudioNotFound = errors.New("queued audio was not found")

	// ErrSrsUpdateNotFound is returned when a query or update targets a
	// queued scheduler-update row that does not exist.
	ErrSrsUpdateNotFound = errors.New("queued srs update was not found")

	// ErrStarTransactionNotFound is returned when a query or update targets
	// a queued star-transaction row that does not exist.
	ErrStarTransactionNotFound = errors.New("queued star transaction was not found")

	// ErrEmptyPatch is returned when a Patch call carries no field changes.
	ErrEmptyPatch = errors.New("patch contains no field updates")
)
