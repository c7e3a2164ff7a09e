// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"syscall"
)

// VT ioctl request numbers from the upstream Linux UAPI header
// include/uapi/linux/vt.h. These are stable ABI — the kernel
// guarantees backward compatibility for UAPI ioctl interfaces. The
// VT ioctls are plain numbers ('V' << 8 | nr), not _IO-encoded.
const (
	// vtOpenQry asks the kernel for the first free VT number,
	// written into an int pointed to by the argument.
	vtOpenQry = 0x5600

	// vtGetMode / vtSetMode read and write struct vt_mode: the
	// auto/process switch mode and the two handshake signal numbers.
	vtGetMode = 0x5601
	vtSetMode = 0x5602

	// vtGetState reads struct vt_stat; v_active is the active VT.
	vtGetState = 0x5603

	// vtRelDisp acknowledges a switch request: argument 1 allows the
	// pending release, VT_ACKACQ confirms a completed acquisition.
	vtRelDisp = 0x5605

	// vtActivate requests a switch to the VT given as the argument;
	// vtWaitActive blocks until that VT is the active one. Both may
	// fail with EINTR when a signal arrives mid-call.
	vtActivate   = 0x5606
	vtWaitActive = 0x5607
)

// Console display ioctl request numbers from include/uapi/linux/kd.h
// ('K' << 8 | nr).
const (
	kdSetMode = 0x4b3a
	kdGetMode = 0x4b3b
)

// SwitchMode is the kernel's VT switching discipline, the "mode" field
// of struct vt_mode.
type SwitchMode int8

const (
	// SwitchAuto (VT_AUTO): the kernel switches VTs on its own, with
	// no process handshake.
	SwitchAuto SwitchMode = 0

	// SwitchProcess (VT_PROCESS): a controlling process must
	// acknowledge every release and acquisition via the signals named
	// in struct vt_mode.
	SwitchProcess SwitchMode = 1
)

func (m SwitchMode) String() string {
	switch m {
	case SwitchAuto:
		return "VT_AUTO"
	case SwitchProcess:
		return "VT_PROCESS"
	}
	return fmt.Sprintf("SwitchMode(%d)", int8(m))
}

// DisplayMode is the kernel console display mode (KDGETMODE/KDSETMODE),
// independent of the VT switch mode.
type DisplayMode int32

const (
	// DisplayText (KD_TEXT): the kernel renders the console.
	DisplayText DisplayMode = 0

	// DisplayGraphics (KD_GRAPHICS): a display server owns the
	// framebuffer; the kernel keeps its hands off.
	DisplayGraphics DisplayMode = 1
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayText:
		return "KD_TEXT"
	case DisplayGraphics:
		return "KD_GRAPHICS"
	}
	return fmt.Sprintf("DisplayMode(%d)", int32(m))
}

// ReleaseAck is the argument to the VT_RELDISP acknowledgment ioctl.
type ReleaseAck int

const (
	// ReleaseDisplay allows a pending switch away from the VT.
	ReleaseDisplay ReleaseAck = 1

	// AcknowledgeAcquire (VT_ACKACQ) confirms that the process has
	// taken over the VT after a switch toward it.
	AcknowledgeAcquire ReleaseAck = 2
)

// Mode is the process-facing view of struct vt_mode: the switch
// discipline plus the two signals the kernel delivers when a
// process-controlled VT is asked to release or acquire the display.
type Mode struct {
	// Switch is VT_AUTO or VT_PROCESS.
	Switch SwitchMode

	// ReleaseSignal is delivered when another process wants the VT;
	// the owner must answer with VT_RELDISP(1). Only meaningful with
	// SwitchProcess.
	ReleaseSignal syscall.Signal

	// AcquireSignal is delivered when the VT has been switched to;
	// the owner must answer with VT_RELDISP(VT_ACKACQ). Only
	// meaningful with SwitchProcess.
	AcquireSignal syscall.Signal
}

// vtModeData mirrors struct vt_mode from linux/vt.h: 8 bytes, one
// int8 mode, one int8 waitv, three int16 signal fields.
type vtModeData struct {
	mode   int8
	waitv  int8
	relsig int16
	acqsig int16
	frsig  int16
}

// vtStatData mirrors struct vt_stat from linux/vt.h.
type vtStatData struct {
	active uint16
	signal uint16
	state  uint16
}
