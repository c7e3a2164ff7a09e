// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package vtswitch drives the lifecycle of a display session's VT
// binding: discovering the active VT, allocating a free one, installing
// the signal-based ownership handshake, and switching the active VT
// while repairing inconsistent state left behind by crashed owners.
//
// The [Controller] is the entry point. Its three operations mirror
// what a session supervisor needs:
//
//   - [Controller.ActiveOrAllocate] for first-VT discovery at startup,
//   - [Controller.AllocateNew] for an additional session's VT,
//   - [Controller.SwitchTo] to make a session's VT the active one.
//
// Switching is best effort by design. Once the master device is open,
// every kernel-call failure is logged and the switch proceeds: a
// partially failed switch still leaves a chance of a usable display,
// while aborting guarantees a stuck one. The only errors surfaced to
// callers are the device opens.
//
// All kernel access goes through the [Kernel] and [Conn] seams so the
// switch ordering, retry, and repair behavior is testable against fake
// kernels without a VT subsystem.
package vtswitch
