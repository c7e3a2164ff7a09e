// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package console provides open handles on the Linux virtual-terminal
// devices and typed wrappers around the kernel's VT and console-display
// ioctl interfaces (linux/vt.h, linux/kd.h).
//
// A [Device] is an open descriptor on either the VT master
// (/dev/tty0, which always refers to the currently active VT) or a
// specific VT device (/dev/ttyN). The device carries no state beyond
// the descriptor; every method is a single kernel call. Callers own
// the handle exclusively and must Close it on every path, normally
// with defer immediately after a successful Open.
//
// Blocking calls (Activate, WaitActive) surface unix.EINTR to the
// caller instead of retrying internally: the VT ownership handshake
// delivers signals while these very calls are in flight, and the
// retry policy belongs to the switch orchestration layer, not here.
package console
