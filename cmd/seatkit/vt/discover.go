// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vt

import (
	"fmt"

	"github.com/seatkit/seatkit/cmd/seatkit/cli"
	"github.com/spf13/pflag"
)

// discoverCommand is the session-startup discovery path: the active VT
// when one is bound, otherwise a freshly allocated one.
func discoverCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "discover",
		Summary: "Print the active VT, allocating one if none is bound",
		Description: `Print the active VT number, or allocate a fresh VT when the
active-VT query fails (no VT bound to the console).

This is the discovery step a session manager performs at startup to
decide where to place its first session. Requires access to the VT
master device.`,
		Usage: "seatkit vt discover [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("discover", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("vt discover takes no arguments")
			}

			ctx, err := newCommandContext(configPath)
			if err != nil {
				return err
			}

			vt, err := ctx.controller.ActiveOrAllocate()
			if err != nil {
				return err
			}

			fmt.Println(vt)
			return nil
		},
	}
}
