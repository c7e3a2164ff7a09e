// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete seatkit CLI command tree.
package commands

import (
	"fmt"

	"github.com/seatkit/seatkit/cmd/seatkit/cli"
	vtcmd "github.com/seatkit/seatkit/cmd/seatkit/vt"
	"github.com/seatkit/seatkit/lib/version"
)

// Root builds and returns the complete seatkit CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "seatkit",
		Description: `seatkit: Linux virtual terminal session toolkit.

Discover, allocate, and switch kernel virtual terminals for display
sessions, with a signal-based ownership handshake so switches away
from a graphical session are negotiated rather than forced.`,
		Subcommands: []*cli.Command{
			vtcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("seatkit %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Show the currently active VT",
				Command:     "seatkit vt active",
			},
			{
				Description: "Allocate a VT for a new session",
				Command:     "seatkit vt allocate",
			},
			{
				Description: "Switch to VT 7",
				Command:     "seatkit vt switch 7",
			},
			{
				Description: "Run a compositor on a fresh VT",
				Command:     "seatkit vt run -- /usr/bin/sway",
			},
		},
	}
}
