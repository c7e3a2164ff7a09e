// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/seatkit/seatkit/cmd/seatkit/commands"
	"github.com/seatkit/seatkit/lib/process"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like vt active on a
		// non-VT console) return an ExitError with the desired exit
		// code. Don't print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}
