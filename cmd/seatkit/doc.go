// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

// Command seatkit is the operator CLI for the seatkit virtual
// terminal session toolkit. Run "seatkit --help" for the command
// tree; the vt subcommands cover discovery, allocation, switching,
// and running programs on a VT.
package main
