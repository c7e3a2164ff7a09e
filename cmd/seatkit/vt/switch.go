// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vt

import (
	"fmt"
	"strconv"

	"github.com/seatkit/seatkit/cmd/seatkit/cli"
	"github.com/seatkit/seatkit/lib/process"
	"github.com/spf13/pflag"
)

// switchCommand jumps the display to a target VT, repairing a broken
// auto-switch-with-graphics state on the way.
func switchCommand() *cli.Command {
	var configPath string
	var priorOwnerGone bool
	var priorOwnerPID int

	return &cli.Command{
		Name:    "switch",
		Summary: "Activate a VT and wait for the switch to complete",
		Description: `Activate the given virtual terminal and wait for it to become the
foreground VT.

Before activating, the command prepares the target for a graphical
session and installs the ownership handshake so later switches away
are negotiated rather than forced. With --prior-owner-gone (or when
--prior-owner-pid names a dead process) the previous owner is assumed
unable to acknowledge a release, so the console is returned to text
mode instead of installing a handshake that nothing would answer.

The switch itself is best-effort: when activation fails the command
still exits 0, matching the recovery behaviour of a session manager
that must carry on with the session on whatever VT is in front.`,
		Usage: "seatkit vt switch <vt> [flags]",
		Examples: []cli.Example{
			{
				Description: "Switch to VT 7",
				Command:     "seatkit vt switch 7",
			},
			{
				Description: "Reclaim VT 7 after its owning process died",
				Command:     "seatkit vt switch 7 --prior-owner-gone",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("switch", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path")
			flagSet.BoolVar(&priorOwnerGone, "prior-owner-gone", false,
				"the previous VT owner has exited and cannot acknowledge a release")
			flagSet.IntVar(&priorOwnerPID, "prior-owner-pid", 0,
				"probe this PID; treat the prior owner as gone when it is dead")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("vt switch takes exactly one argument: the target VT number")
			}
			target, err := strconv.Atoi(args[0])
			if err != nil || target <= 0 {
				return fmt.Errorf("invalid VT number %q: want a positive integer", args[0])
			}

			ctx, err := newCommandContext(configPath)
			if err != nil {
				return err
			}

			gone := priorOwnerGone
			if priorOwnerPID > 0 && !process.Alive(priorOwnerPID) {
				gone = true
			}

			return ctx.controller.SwitchTo(target, gone)
		},
	}
}
