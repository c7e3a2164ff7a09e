// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vt

import (
	"fmt"
	"os"

	"github.com/seatkit/seatkit/cmd/seatkit/cli"
	"github.com/seatkit/seatkit/lib/console"
)

// activeCommand reports the currently active VT number. It reads the
// sysfs attribute, which needs no privileges, so any session process
// can ask where the display currently is.
func activeCommand() *cli.Command {
	return &cli.Command{
		Name:    "active",
		Summary: "Print the currently active VT number",
		Description: `Print the number of the currently active virtual terminal.

Reads /sys/class/tty/tty0/active, which requires no privileges. Exits
with code 1 (and prints a diagnostic to stderr) when the foreground
console is not a VT, e.g. a serial console.`,
		Usage: "seatkit vt active",
		Examples: []cli.Example{
			{
				Description: "Show the active VT",
				Command:     "seatkit vt active",
			},
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("vt active takes no arguments")
			}

			vt, err := console.ActiveVT()
			if err != nil {
				fmt.Fprintf(os.Stderr, "seatkit: %v\n", err)
				return &cli.ExitError{Code: 1}
			}

			fmt.Println(vt)
			return nil
		},
	}
}
