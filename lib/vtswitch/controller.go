// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vtswitch

import (
	"fmt"
	"log/slog"
	"syscall"

	"github.com/seatkit/seatkit/lib/console"
)

// Default handshake signals, matching the traditional display-manager
// choice: the top of the real-time range, which nothing else in a
// session-manager process uses. On Linux SIGRTMAX is 64.
const (
	DefaultReleaseSignal = syscall.Signal(64) // SIGRTMAX
	DefaultAcquireSignal = syscall.Signal(63) // SIGRTMAX - 1
)

// Params configures a Controller. A struct instead of positional
// parameters: several fields share a type and zero values mean "use
// the default".
type Params struct {
	// Logger receives the controller's diagnostics. Required.
	Logger *slog.Logger

	// MasterPath overrides the VT master device path. Empty means
	// console.MasterPath.
	MasterPath string

	// ReleaseSignal and AcquireSignal are the real-time signals used
	// for the ownership handshake. Zero means the defaults. They must
	// not collide with signals the hosting process uses elsewhere.
	ReleaseSignal syscall.Signal
	AcquireSignal syscall.Signal
}

// Controller coordinates VT discovery, allocation, and switching for a
// display session supervisor. One controller per process: the ownership
// handshake it installs is process-wide state.
type Controller struct {
	kernel    Kernel
	logger    *slog.Logger
	handshake *handshake
}

// New returns a Controller operating on the real VT devices.
func New(params Params) *Controller {
	masterPath := params.MasterPath
	if masterPath == "" {
		masterPath = console.MasterPath
	}
	return newController(deviceKernel{masterPath: masterPath}, osNotifier{}, params)
}

// newController wires an arbitrary kernel and signal notifier; tests
// use it to substitute fakes.
func newController(kernel Kernel, notifier signalNotifier, params Params) *Controller {
	release := params.ReleaseSignal
	if release == 0 {
		release = DefaultReleaseSignal
	}
	acquire := params.AcquireSignal
	if acquire == 0 {
		acquire = DefaultAcquireSignal
	}
	return &Controller{
		kernel: kernel,
		logger: params.Logger,
		handshake: &handshake{
			kernel:   kernel,
			notifier: notifier,
			logger:   params.Logger,
			release:  release,
			acquire:  acquire,
		},
	}
}

// ActiveOrAllocate returns the currently active VT, or, when no VT is
// bound (the active-VT query fails), a freshly allocated one. This is
// the first-VT discovery path used at session-manager startup.
func (c *Controller) ActiveOrAllocate() (int, error) {
	master, err := c.kernel.OpenMaster()
	if err != nil {
		return 0, fmt.Errorf("opening VT master: %w", err)
	}
	defer master.Close()

	active, err := master.State()
	if err != nil {
		// No current VT. Ask for the next free one instead.
		c.logger.Warn("cannot query active VT, requesting a new one", "error", err)
		vt, allocateErr := master.OpenQuery()
		if allocateErr != nil {
			return 0, fmt.Errorf("allocating a VT: %w", allocateErr)
		}
		return vt, nil
	}
	return active, nil
}

// AllocateNew returns a freshly allocated VT for an additional session.
// When the kernel reports no free VT (a non-positive number from the
// allocation query), it falls back to the currently active VT: the
// caller must end up with some usable VT whenever one exists at all.
func (c *Controller) AllocateNew() (int, error) {
	master, err := c.kernel.OpenMaster()
	if err != nil {
		return 0, fmt.Errorf("opening VT master: %w", err)
	}
	defer master.Close()

	vt, err := master.OpenQuery()
	if err != nil {
		return 0, fmt.Errorf("allocating a VT: %w", err)
	}
	if vt <= 0 {
		active, stateErr := master.State()
		if stateErr != nil {
			return 0, fmt.Errorf("no free VT and cannot query the active one: %w", stateErr)
		}
		c.logger.Warn("no free VT available, falling back to the active VT",
			"allocated", vt, "active", active)
		return active, nil
	}
	return vt, nil
}
