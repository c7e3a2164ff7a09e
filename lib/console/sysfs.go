// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SysfsActivePath is the sysfs attribute naming the active VT, e.g.
// "tty4". Readable without opening /dev/tty0, so unprivileged tooling
// can answer "which VT is active" without the ioctl path.
const SysfsActivePath = "/sys/class/tty/tty0/active"

// ActiveVT reads the active VT number from sysfs.
func ActiveVT() (int, error) {
	return ReadActiveVT(SysfsActivePath)
}

// ReadActiveVT reads an "active" sysfs attribute from the given path
// and parses the VT number out of its "ttyN" content.
func ReadActiveVT(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading active VT: %w", err)
	}
	return parseTTYName(strings.TrimSpace(string(data)))
}

// parseTTYName extracts the VT number from a kernel tty name ("tty4").
// Anything that is not "tty" followed by a positive number is rejected:
// the attribute can also name non-VT consoles (ttyS0, hvc0) on systems
// where the foreground console is not a VT.
func parseTTYName(name string) (int, error) {
	suffix, ok := strings.CutPrefix(name, "tty")
	if !ok {
		return 0, fmt.Errorf("active console %q is not a VT", name)
	}
	vt, err := strconv.Atoi(suffix)
	if err != nil || vt <= 0 {
		return 0, fmt.Errorf("active console %q is not a VT", name)
	}
	return vt, nil
}
