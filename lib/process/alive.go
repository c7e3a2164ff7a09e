// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Alive reports whether pid names a running process, using the
// kill(pid, 0) existence probe. EPERM counts as alive: the process
// exists, we just may not signal it. Non-positive pids are never
// alive (they address process groups, not a process).
//
// A zombie still counts as alive here. For the VT prior-owner
// question that is the right answer: its VT state has not been
// cleaned up until it is reaped.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	if err == nil {
		return true
	}
	return errors.Is(err, unix.EPERM)
}
