// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vtswitch

import (
	"fmt"

	"github.com/seatkit/seatkit/lib/console"
)

// SwitchTo makes the target VT the active one, best effort.
//
// priorOwnerGone tells the controller whether the previous controlling
// process of the active VT is known to be dead already. It decides the
// repair strategy for a stuck VT and whether the handshake is needed:
// with the owner gone, nothing will ever acknowledge a release, so the
// kernel's automatic switching has to carry the switch.
//
// The contract is "best effort, check side effects": after the two
// device opens, every kernel-call failure is logged and the procedure
// continues. The returned error is non-nil only when the master device
// cannot be opened. A target device that cannot be opened degrades to
// issuing the switch through the master handle (with a logged warning);
// the clear and graphics-mode steps are skipped since the device they
// would act on is not there.
func (c *Controller) SwitchTo(target int, priorOwnerGone bool) error {
	c.logger.Info("switching VT", "vt", target, "prior_owner_gone", priorOwnerGone)

	master, err := c.kernel.OpenMaster()
	if err != nil {
		return fmt.Errorf("opening VT master: %w", err)
	}
	defer master.Close()

	// The operative handle carries the handshake installation and the
	// activation calls: the target device when it opened, the master
	// as the documented degraded mode when it did not.
	operative := master

	targetConn, err := c.kernel.OpenVT(target)
	if err != nil {
		c.logger.Warn("cannot open target VT device, using the master handle instead",
			"vt", target, "error", err)
	} else {
		defer targetConn.Close()
		operative = targetConn

		// Cosmetic: wipe stale content and blank the VT into graphics
		// mode so the switch does not flicker old console text.
		if err := targetConn.Clear(); err != nil {
			c.logger.Warn("cannot clear target VT", "vt", target, "error", err)
		}
		if err := targetConn.SetDisplayMode(console.DisplayGraphics); err != nil {
			c.logger.Warn("cannot set graphics mode on target VT", "vt", target, "error", err)
		}
	}

	// The active VT may have been left in a combination of states
	// (KD_GRAPHICS with VT_AUTO) that no switch can escape from. Make
	// sure VT_ACTIVATE will work without hanging VT_WAITACTIVE.
	c.repairMode(master, priorOwnerGone)

	// With the owner gone the kernel switches automatically and no
	// handshake is possible. Otherwise the handshake must be in place
	// before activation: the activation can trigger a release request
	// that needs an acknowledgment path.
	if !priorOwnerGone {
		c.takeProcessControl(operative)
	}

	err = retryInterrupted(func() error {
		if err := operative.Activate(target); err != nil {
			return fmt.Errorf("initiating jump to VT %d: %w", target, err)
		}
		if err := operative.WaitActive(target); err != nil {
			return fmt.Errorf("finalizing jump to VT %d: %w", target, err)
		}
		return nil
	}, isInterrupted)
	if err != nil {
		c.logger.Warn("VT switch incomplete", "vt", target, "error", err)
	}
	return nil
}
