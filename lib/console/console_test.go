// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"testing"
	"unsafe"
)

func TestVTPath(t *testing.T) {
	tests := []struct {
		vt   int
		want string
	}{
		{1, "/dev/tty1"},
		{7, "/dev/tty7"},
		{63, "/dev/tty63"},
	}
	for _, test := range tests {
		if got := VTPath(test.vt); got != test.want {
			t.Errorf("VTPath(%d) = %q, want %q", test.vt, got, test.want)
		}
	}
}

func TestOpenPath_MissingDevice(t *testing.T) {
	_, err := OpenPath("/dev/seatkit-test-no-such-device")
	if err == nil {
		t.Fatal("OpenPath on missing device: want error, got nil")
	}
	var openError *OpenError
	if !errors.As(err, &openError) {
		t.Fatalf("error type = %T, want *OpenError", err)
	}
	if openError.Path != "/dev/seatkit-test-no-such-device" {
		t.Errorf("OpenError.Path = %q, want the requested path", openError.Path)
	}
	if openError.Unwrap() == nil {
		t.Error("OpenError.Unwrap() = nil, want the OS error")
	}
}

// The vt_mode and vt_stat mirrors must match the kernel UAPI layout
// byte for byte; a size drift would corrupt adjacent stack memory on
// every VT_GETMODE.
func TestABIStructSizes(t *testing.T) {
	if size := unsafe.Sizeof(vtModeData{}); size != 8 {
		t.Errorf("sizeof(vtModeData) = %d, want 8", size)
	}
	if size := unsafe.Sizeof(vtStatData{}); size != 6 {
		t.Errorf("sizeof(vtStatData) = %d, want 6", size)
	}
}

func TestModeStrings(t *testing.T) {
	if got := SwitchAuto.String(); got != "VT_AUTO" {
		t.Errorf("SwitchAuto = %q, want VT_AUTO", got)
	}
	if got := SwitchProcess.String(); got != "VT_PROCESS" {
		t.Errorf("SwitchProcess = %q, want VT_PROCESS", got)
	}
	if got := DisplayText.String(); got != "KD_TEXT" {
		t.Errorf("DisplayText = %q, want KD_TEXT", got)
	}
	if got := DisplayGraphics.String(); got != "KD_GRAPHICS" {
		t.Errorf("DisplayGraphics = %q, want KD_GRAPHICS", got)
	}
	if got := SwitchMode(9).String(); got != "SwitchMode(9)" {
		t.Errorf("unknown switch mode = %q, want SwitchMode(9)", got)
	}
}

func TestClearSequence(t *testing.T) {
	// Cursor home followed by erase-entire-screen, the classic
	// pre-session console wipe.
	if got := string(clearSequence); got != "\x1b[H\x1b[2J" {
		t.Errorf("clearSequence = %q, want %q", got, "\x1b[H\x1b[2J")
	}
}
