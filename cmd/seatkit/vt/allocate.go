// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vt

import (
	"fmt"

	"github.com/seatkit/seatkit/cmd/seatkit/cli"
	"github.com/spf13/pflag"
)

// allocateCommand asks the kernel for the next free VT, the path used
// when starting an additional session alongside an existing one.
func allocateCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "allocate",
		Summary: "Print a freshly allocated VT number",
		Description: `Ask the kernel for the next unused virtual terminal and print its
number. When every VT is in use, falls back to the currently active VT
so the caller still ends up with a usable terminal.

Requires access to the VT master device.`,
		Usage: "seatkit vt allocate [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("allocate", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("vt allocate takes no arguments")
			}

			ctx, err := newCommandContext(configPath)
			if err != nil {
				return err
			}

			vt, err := ctx.controller.AllocateNew()
			if err != nil {
				return err
			}

			fmt.Println(vt)
			return nil
		},
	}
}
