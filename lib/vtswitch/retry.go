// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vtswitch

import (
	"errors"

	"golang.org/x/sys/unix"
)

// retryInterrupted runs op until it returns an outcome that is not an
// interruption: nil, or an error the predicate rejects. The handshake
// handlers deliver signals while the blocking VT calls are in flight,
// so interruption is an expected non-failure and the retry is
// unbounded.
func retryInterrupted(op func() error, interrupted func(error) bool) error {
	for {
		err := op()
		if err == nil || !interrupted(err) {
			return err
		}
	}
}

// isInterrupted reports whether err is a signal interruption of a
// kernel call.
func isInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}
