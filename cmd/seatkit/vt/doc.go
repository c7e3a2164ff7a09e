// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package vt implements the "seatkit vt" command group: discovery,
// allocation, switching, and status of kernel virtual terminals. The
// subcommands are thin wrappers over [vtswitch.Controller]; everything
// that touches the kernel lives in the libraries.
package vt
