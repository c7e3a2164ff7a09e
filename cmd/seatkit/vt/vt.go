// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vt

import (
	"github.com/seatkit/seatkit/cmd/seatkit/cli"
)

// Command returns the "vt" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "vt",
		Summary: "Manage kernel virtual terminals",
		Description: `Manage kernel virtual terminals (VTs).

Discovery and allocation are read-mostly and need only access to the
VT master device (/dev/tty0 by default). Switching additionally takes
process control of the target VT, so the kernel negotiates future
switches away from it instead of yanking the display.`,
		Subcommands: []*cli.Command{
			activeCommand(),
			discoverCommand(),
			allocateCommand(),
			switchCommand(),
			statusCommand(),
			runCommand(),
		},
	}
}
