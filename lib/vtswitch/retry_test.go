// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vtswitch

import (
	"fmt"
	"testing"

	"golang.org/x/sys/unix"
)

func TestRetryInterrupted_PassesThroughSuccess(t *testing.T) {
	calls := 0
	err := retryInterrupted(func() error {
		calls++
		return nil
	}, isInterrupted)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryInterrupted_RetriesUntilNonInterrupt(t *testing.T) {
	// Far past any plausible bounded retry: the retry is unbounded.
	interruptions := 1000
	calls := 0
	err := retryInterrupted(func() error {
		calls++
		if calls <= interruptions {
			return fmt.Errorf("activating: %w", unix.EINTR)
		}
		return nil
	}, isInterrupted)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if calls != interruptions+1 {
		t.Errorf("calls = %d, want %d", calls, interruptions+1)
	}
}

func TestRetryInterrupted_ReturnsOtherErrors(t *testing.T) {
	calls := 0
	err := retryInterrupted(func() error {
		calls++
		return unix.ENXIO
	}, isInterrupted)
	if err != unix.ENXIO {
		t.Fatalf("err = %v, want ENXIO", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on non-interrupt)", calls)
	}
}

func TestIsInterrupted(t *testing.T) {
	if !isInterrupted(unix.EINTR) {
		t.Error("isInterrupted(EINTR) = false, want true")
	}
	if !isInterrupted(fmt.Errorf("VT_ACTIVATE: %w", unix.EINTR)) {
		t.Error("isInterrupted(wrapped EINTR) = false, want true")
	}
	if isInterrupted(unix.EIO) {
		t.Error("isInterrupted(EIO) = true, want false")
	}
	if isInterrupted(nil) {
		t.Error("isInterrupted(nil) = true, want false")
	}
}
