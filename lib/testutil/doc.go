// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for seatkit packages.
//
// [RequireReceive], [RequireSend], and [RequireClosed] encapsulate the
// timeout safety valve pattern (select with time.After fallback) so
// that individual tests do not need direct time.After calls. The
// handshake tests use them to synchronize with the signal-serving
// goroutine without sleeping.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no seatkit-internal dependencies.
package testutil
