// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vtswitch

import (
	"github.com/seatkit/seatkit/lib/console"
)

// Conn is one open VT device handle as the controller sees it. The
// production implementation is [console.Device]; tests substitute
// stateful fakes that record call order and open/close counts.
type Conn interface {
	// State returns the currently active VT number.
	State() (int, error)

	// OpenQuery returns the first free VT number, or a non-positive
	// value when the kernel has none to offer.
	OpenQuery() (int, error)

	// Mode and SetMode read and write the VT switch mode and
	// handshake signal numbers.
	Mode() (console.Mode, error)
	SetMode(console.Mode) error

	// DisplayMode and SetDisplayMode read and write the kernel
	// console display mode.
	DisplayMode() (console.DisplayMode, error)
	SetDisplayMode(console.DisplayMode) error

	// Activate and WaitActive request and await a VT switch. Both
	// may fail with unix.EINTR, which the controller retries.
	Activate(vt int) error
	WaitActive(vt int) error

	// AcknowledgeRelease answers a pending release or acquisition.
	AcknowledgeRelease(console.ReleaseAck) error

	// Clear wipes the VT's visible content.
	Clear() error

	// Close releases the handle. Every Conn obtained from a Kernel
	// is closed exactly once, on every path.
	Close() error
}

// Kernel opens VT device handles. The production implementation opens
// real devices under /dev; tests substitute fakes.
type Kernel interface {
	// OpenMaster opens the VT master control device.
	OpenMaster() (Conn, error)

	// OpenVT opens the device for a specific VT number.
	OpenVT(vt int) (Conn, error)
}

// deviceKernel is the production Kernel backed by lib/console.
type deviceKernel struct {
	// masterPath is the master control device, normally
	// console.MasterPath. Configurable for hosts with a nonstandard
	// console setup.
	masterPath string
}

func (k deviceKernel) OpenMaster() (Conn, error) {
	device, err := console.OpenPath(k.masterPath)
	if err != nil {
		return nil, err
	}
	return device, nil
}

func (k deviceKernel) OpenVT(vt int) (Conn, error) {
	device, err := console.OpenVT(vt)
	if err != nil {
		return nil, err
	}
	return device, nil
}
