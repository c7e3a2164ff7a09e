// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sys/unix"
)

// MasterPath is the VT master control device. It always refers to the
// currently active VT and is the handle used for discovery, allocation,
// and switch requests.
const MasterPath = "/dev/tty0"

// VTPath returns the device path for a specific VT number.
func VTPath(vt int) string {
	return fmt.Sprintf("/dev/tty%d", vt)
}

// OpenError reports a failed open of a VT device. It is the only hard
// failure in this package's contract; everything after a successful
// open degrades softly at the orchestration layer.
type OpenError struct {
	// Path is the device that could not be opened.
	Path string

	// Err is the underlying OS error.
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Device is an open read-write, non-controlling descriptor on a VT
// device. The descriptor is the only state; the holder owns it
// exclusively and must call Close on every exit path.
type Device struct {
	path string
	fd   int
}

// Open opens the VT master device.
func Open() (*Device, error) {
	return OpenPath(MasterPath)
}

// OpenVT opens the device for a specific VT number.
func OpenVT(vt int) (*Device, error) {
	return OpenPath(VTPath(vt))
}

// OpenPath opens an arbitrary VT device path. O_NOCTTY keeps the VT
// from becoming our controlling terminal: the handle is for control
// ioctls, not for session I/O.
func OpenPath(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return &Device{path: path, fd: fd}, nil
}

// Path returns the device path this handle was opened from.
func (d *Device) Path() string {
	return d.path
}

// Close releases the descriptor.
func (d *Device) Close() error {
	return unix.Close(d.fd)
}

// ioctlPointer issues an ioctl whose argument is a pointer into our
// address space, in the raw-syscall style required for UAPI structs.
func (d *Device) ioctlPointer(request uintptr, argument unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), request, uintptr(argument))
	if errno != 0 {
		return errno
	}
	return nil
}

// ioctlInt issues an ioctl whose argument is a plain integer value.
func (d *Device) ioctlInt(request uintptr, argument int) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), request, uintptr(argument))
	if errno != 0 {
		return errno
	}
	return nil
}

// State returns the currently active VT number (VT_GETSTATE). The
// ioctl fails with EINVAL when the process has no VT bound at all,
// which discovery treats as "allocate one instead".
func (d *Device) State() (int, error) {
	var stat vtStatData
	if err := d.ioctlPointer(vtGetState, unsafe.Pointer(&stat)); err != nil {
		return 0, fmt.Errorf("VT_GETSTATE on %s: %w", d.path, err)
	}
	return int(stat.active), nil
}

// OpenQuery asks the kernel for the first free VT (VT_OPENQRY). A
// non-positive result means the kernel has no free VT to offer through
// this channel; callers decide the fallback.
func (d *Device) OpenQuery() (int, error) {
	var vt int32
	if err := d.ioctlPointer(vtOpenQry, unsafe.Pointer(&vt)); err != nil {
		return 0, fmt.Errorf("VT_OPENQRY on %s: %w", d.path, err)
	}
	return int(vt), nil
}

// Mode returns the VT's switch mode and handshake signals (VT_GETMODE).
func (d *Device) Mode() (Mode, error) {
	var data vtModeData
	if err := d.ioctlPointer(vtGetMode, unsafe.Pointer(&data)); err != nil {
		return Mode{}, fmt.Errorf("VT_GETMODE on %s: %w", d.path, err)
	}
	return Mode{
		Switch:        SwitchMode(data.mode),
		ReleaseSignal: syscall.Signal(data.relsig),
		AcquireSignal: syscall.Signal(data.acqsig),
	}, nil
}

// SetMode sets the VT's switch mode and handshake signals (VT_SETMODE).
func (d *Device) SetMode(mode Mode) error {
	data := vtModeData{
		mode:   int8(mode.Switch),
		relsig: int16(mode.ReleaseSignal),
		acqsig: int16(mode.AcquireSignal),
	}
	if err := d.ioctlPointer(vtSetMode, unsafe.Pointer(&data)); err != nil {
		return fmt.Errorf("VT_SETMODE(%v) on %s: %w", mode.Switch, d.path, err)
	}
	return nil
}

// DisplayMode returns the kernel console display mode (KDGETMODE).
func (d *Device) DisplayMode() (DisplayMode, error) {
	var mode int32
	if err := d.ioctlPointer(kdGetMode, unsafe.Pointer(&mode)); err != nil {
		return 0, fmt.Errorf("KDGETMODE on %s: %w", d.path, err)
	}
	return DisplayMode(mode), nil
}

// SetDisplayMode sets the kernel console display mode (KDSETMODE).
func (d *Device) SetDisplayMode(mode DisplayMode) error {
	if err := d.ioctlInt(kdSetMode, int(mode)); err != nil {
		return fmt.Errorf("KDSETMODE(%v) on %s: %w", mode, d.path, err)
	}
	return nil
}

// Activate requests a switch to the given VT (VT_ACTIVATE). May fail
// with EINTR; the caller retries.
func (d *Device) Activate(vt int) error {
	if err := d.ioctlInt(vtActivate, vt); err != nil {
		return fmt.Errorf("VT_ACTIVATE(%d) on %s: %w", vt, d.path, err)
	}
	return nil
}

// WaitActive blocks until the given VT is active (VT_WAITACTIVE). May
// fail with EINTR; the caller retries.
func (d *Device) WaitActive(vt int) error {
	if err := d.ioctlInt(vtWaitActive, vt); err != nil {
		return fmt.Errorf("VT_WAITACTIVE(%d) on %s: %w", vt, d.path, err)
	}
	return nil
}

// AcknowledgeRelease answers a pending switch request (VT_RELDISP).
func (d *Device) AcknowledgeRelease(ack ReleaseAck) error {
	if err := d.ioctlInt(vtRelDisp, int(ack)); err != nil {
		return fmt.Errorf("VT_RELDISP(%d) on %s: %w", int(ack), d.path, err)
	}
	return nil
}

// clearSequence homes the cursor and erases the whole screen. Written
// to a VT before handing it to a session so stale console content never
// shows through.
var clearSequence = []byte(ansi.CursorHomePosition + ansi.EraseEntireScreen)

// Clear writes the clear escape sequence to the VT.
func (d *Device) Clear() error {
	if _, err := unix.Write(d.fd, clearSequence); err != nil {
		return fmt.Errorf("clearing %s: %w", d.path, err)
	}
	return nil
}
