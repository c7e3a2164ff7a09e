// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers and process
// liveness probes for seatkit binaries.
//
//   - [Fatal] is the standard error handler for main() before the
//     structured logger exists.
//   - [Alive] answers whether a pid still names a running process,
//     which is how the CLI decides whether a VT's previous controlling
//     process is gone before a switch.
package process
