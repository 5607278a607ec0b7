// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Velichko

package service

import "errors"

var (
	ErrOffline          = errors.New("remote service unreachable")
	ErrSyncInProgress   = errors.New("sync already in progress")
	ErrUnknownQueueKind = errors.New("unknown queue kind")
)
