// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the seatkit command framework: a small tree of
// [Command] values with pflag flag sets, structured help output, and
// typo suggestions for unknown commands and flags.
//
// Commands that manage their own output and exit code return
// [ExitError]; main checks for it and exits without printing a
// redundant error line.
package cli
