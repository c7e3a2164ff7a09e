// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vtswitch

import (
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/seatkit/seatkit/lib/console"
)

// signalNotifier abstracts os/signal registration so handshake tests
// can deliver signals deterministically.
type signalNotifier interface {
	Notify(ch chan<- os.Signal, signals ...os.Signal)
	Stop(ch chan<- os.Signal)
}

// osNotifier is the production notifier.
type osNotifier struct{}

func (osNotifier) Notify(ch chan<- os.Signal, signals ...os.Signal) {
	signal.Notify(ch, signals...)
}

func (osNotifier) Stop(ch chan<- os.Signal) {
	signal.Stop(ch)
}

// handshake owns the process-wide VT ownership protocol: the two
// real-time signals the kernel delivers when a process-controlled VT
// must release the display or has acquired it. Exactly one
// registration is meaningful at a time; installing again replaces the
// previous one rather than stacking.
type handshake struct {
	kernel   Kernel
	notifier signalNotifier
	logger   *slog.Logger
	release  syscall.Signal
	acquire  syscall.Signal

	mu sync.Mutex
	ch chan os.Signal
}

// install registers the handshake signals and starts the goroutine
// that acknowledges them. Must happen before a process-driven
// activation is issued: the activation can trigger a release request
// whose acknowledgment path has to already exist, or the switch stalls.
func (h *handshake) install() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ch != nil {
		// Replace semantics: drop the previous registration. Stop
		// guarantees no further sends, so closing afterwards cleanly
		// ends the old goroutine.
		h.notifier.Stop(h.ch)
		close(h.ch)
	}

	// Buffered so a signal arriving while a previous one is being
	// acknowledged is not lost.
	h.ch = make(chan os.Signal, 8)
	h.notifier.Notify(h.ch, h.release, h.acquire)
	go h.serve(h.ch)
}

// installed reports whether a registration is active.
func (h *handshake) installed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ch != nil
}

// serve acknowledges handshake signals until the channel is closed by
// a replacing install.
func (h *handshake) serve(ch chan os.Signal) {
	for sig := range ch {
		h.acknowledge(sig)
	}
}

// acknowledge answers one kernel request. It does the minimum safe in
// this asynchronous context: open a fresh master handle, issue the one
// acknowledgment ioctl, close the handle. No other process state is
// touched.
func (h *handshake) acknowledge(sig os.Signal) {
	master, err := h.kernel.OpenMaster()
	if err != nil {
		h.logger.Error("cannot open VT master to acknowledge switch request",
			"signal", sig, "error", err)
		return
	}
	defer master.Close()

	ack := console.ReleaseDisplay
	if sig == h.acquire {
		ack = console.AcknowledgeAcquire
	}
	if err := master.AcknowledgeRelease(ack); err != nil {
		h.logger.Error("VT switch acknowledgment failed",
			"signal", sig, "ack", int(ack), "error", err)
	}
}
