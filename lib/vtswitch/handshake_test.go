// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vtswitch

import (
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/seatkit/seatkit/lib/console"
	"github.com/seatkit/seatkit/lib/testutil"
)

func TestHandshake_AcknowledgesRelease(t *testing.T) {
	kernel := &fakeKernel{ackDelivered: make(chan console.ReleaseAck, 1)}
	controller, notifier := newTestController(kernel)

	controller.handshake.install()
	notifier.deliver(DefaultReleaseSignal)

	ack := testutil.RequireReceive(t, kernel.ackDelivered, 5*time.Second, "waiting for release acknowledgment")
	if ack != console.ReleaseDisplay {
		t.Errorf("ack = %d, want ReleaseDisplay (1)", ack)
	}
}

func TestHandshake_AcknowledgesAcquire(t *testing.T) {
	kernel := &fakeKernel{ackDelivered: make(chan console.ReleaseAck, 1)}
	controller, notifier := newTestController(kernel)

	controller.handshake.install()
	notifier.deliver(DefaultAcquireSignal)

	ack := testutil.RequireReceive(t, kernel.ackDelivered, 5*time.Second, "waiting for acquire acknowledgment")
	if ack != console.AcknowledgeAcquire {
		t.Errorf("ack = %d, want AcknowledgeAcquire (2)", ack)
	}
}

// Each acknowledgment opens a fresh master handle and closes it; the
// handler touches nothing else.
func TestHandshake_HandlerOpensAndClosesFreshHandle(t *testing.T) {
	kernel := &fakeKernel{ackDelivered: make(chan console.ReleaseAck, 2)}
	controller, notifier := newTestController(kernel)

	controller.handshake.install()
	notifier.deliver(DefaultReleaseSignal)
	testutil.RequireReceive(t, kernel.ackDelivered, 5*time.Second, "first acknowledgment")
	notifier.deliver(DefaultAcquireSignal)
	testutil.RequireReceive(t, kernel.ackDelivered, 5*time.Second, "second acknowledgment")

	kernel.mu.Lock()
	defer kernel.mu.Unlock()
	if kernel.opens != 2 || kernel.closes != 2 {
		t.Errorf("opens = %d, closes = %d, want 2 and 2", kernel.opens, kernel.closes)
	}
}

// Installing again replaces the previous registration instead of
// stacking a second one.
func TestHandshake_ReinstallReplaces(t *testing.T) {
	kernel := &fakeKernel{ackDelivered: make(chan console.ReleaseAck, 1)}
	controller, notifier := newTestController(kernel)

	controller.handshake.install()
	first := notifier.ch
	controller.handshake.install()

	notifier.mu.Lock()
	stops := notifier.stops
	second := notifier.ch
	notifier.mu.Unlock()

	if stops != 1 {
		t.Errorf("stops = %d, want 1 (previous registration released)", stops)
	}
	if first == second {
		t.Error("reinstall kept the old channel, want a fresh registration")
	}
	if !controller.handshake.installed() {
		t.Error("installed() = false after install")
	}

	// The replacement still acknowledges.
	notifier.deliver(DefaultReleaseSignal)
	testutil.RequireReceive(t, kernel.ackDelivered, 5*time.Second, "acknowledgment after reinstall")
}

// A failed master open inside the handler is logged and swallowed; the
// handler must never panic or mutate state in that path.
func TestHandshake_MasterOpenFailureInHandler(t *testing.T) {
	kernel := &fakeKernel{}
	controller, notifier := newTestController(kernel)

	controller.handshake.install()
	kernel.mu.Lock()
	kernel.masterOpenErr = unix.EACCES
	kernel.mu.Unlock()

	notifier.deliver(DefaultReleaseSignal)

	// Reinstall synchronizes with the serving goroutine's shutdown
	// path; if the handler panicked the test would fail on the closed
	// channel send instead.
	controller.handshake.install()
	kernel.mu.Lock()
	defer kernel.mu.Unlock()
	if len(kernel.acks) != 0 {
		t.Errorf("acks = %v, want none when the master cannot be opened", kernel.acks)
	}
}
