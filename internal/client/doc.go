// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Velichko

// Package client implements the client application runtime.
//
// It wires the connectivity monitor, client services, and background
// synchronization into a single process lifecycle.
package client
