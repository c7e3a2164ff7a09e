// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vtswitch

import (
	"github.com/seatkit/seatkit/lib/console"
)

// RepairOutcome is the result of a mode-repair pass over the active VT.
type RepairOutcome int

const (
	// RepairUnneeded: the VT was not in the broken combination.
	RepairUnneeded RepairOutcome = iota

	// RepairEscapedToText: the display mode was forced back to text
	// so the kernel's automatic switching can escape graphics mode.
	RepairEscapedToText

	// RepairInstalledHandshake: this process took over as the VT's
	// controlling process and installed the handshake.
	RepairInstalledHandshake

	// RepairFailed: a kernel query or repair call failed. The caller
	// proceeds with the switch anyway; aborting risks leaving the
	// display permanently stuck.
	RepairFailed
)

func (o RepairOutcome) String() string {
	switch o {
	case RepairUnneeded:
		return "unneeded"
	case RepairEscapedToText:
		return "escaped-to-text"
	case RepairInstalledHandshake:
		return "installed-handshake"
	case RepairFailed:
		return "failed"
	}
	return "unknown"
}

// repairMode detects and fixes the one VT state combination a switch
// cannot escape from: VT_AUTO together with KD_GRAPHICS. In that state
// there is no controlling process to release the display and no kernel
// auto-path out of graphics mode, so VT_ACTIVATE would hang in
// VT_WAITACTIVE forever.
//
// The repair strategy depends on whether the previous controlling
// process is known to be gone. If gone, nothing will ever answer a
// release request, so the display mode is forced to text and the
// kernel's automatic switching takes over. If it may still exist, this
// process installs the handshake on the master handle and takes over
// as controlling process.
//
// Failures are logged and reported as RepairFailed, never escalated:
// the switch attempt continues regardless.
func (c *Controller) repairMode(master Conn, priorOwnerGone bool) RepairOutcome {
	mode, err := master.Mode()
	if err != nil {
		c.logger.Error("cannot query VT mode", "error", err)
		return RepairFailed
	}
	if mode.Switch != console.SwitchAuto {
		return RepairUnneeded
	}

	display, err := master.DisplayMode()
	if err != nil {
		c.logger.Error("cannot query kernel display mode", "error", err)
		return RepairFailed
	}
	if display != console.DisplayGraphics {
		return RepairUnneeded
	}

	if priorOwnerGone {
		if err := master.SetDisplayMode(console.DisplayText); err != nil {
			c.logger.Error("cannot set text mode on active VT", "error", err)
			return RepairFailed
		}
		c.logger.Info("repaired VT state", "outcome", RepairEscapedToText.String())
		return RepairEscapedToText
	}

	c.takeProcessControl(master)
	c.logger.Info("repaired VT state", "outcome", RepairInstalledHandshake.String())
	return RepairInstalledHandshake
}

// takeProcessControl puts the VT into process-controlled switching with
// our handshake signals and registers the process-wide acknowledgment
// handlers. A failed VT_SETMODE is logged but the handlers are
// registered regardless: the switch is still attempted, and if the
// kernel did honor the mode the acknowledgment path must exist.
func (c *Controller) takeProcessControl(conn Conn) {
	mode := console.Mode{
		Switch:        console.SwitchProcess,
		ReleaseSignal: c.handshake.release,
		AcquireSignal: c.handshake.acquire,
	}
	if err := conn.SetMode(mode); err != nil {
		c.logger.Warn("cannot take process control of VT", "error", err)
	}
	c.handshake.install()
}
