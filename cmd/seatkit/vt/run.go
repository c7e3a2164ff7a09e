// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vt

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/seatkit/seatkit/cmd/seatkit/cli"
	"github.com/seatkit/seatkit/lib/console"
	"github.com/seatkit/seatkit/lib/process"
	"github.com/spf13/pflag"
)

// runCommand switches to a VT and runs a program on it, in the manner
// of openvt(1): the program gets the VT as its controlling terminal.
func runCommand() *cli.Command {
	var configPath string
	var targetVT int
	var priorOwnerGone bool
	var priorOwnerPID int

	return &cli.Command{
		Name:    "run",
		Summary: "Switch to a VT and run a program on it",
		Description: `Switch to a virtual terminal and run a program with that terminal as
its controlling terminal, stdin, stdout, and stderr.

Without --vt a fresh VT is allocated first. The command waits for the
program to exit and propagates its exit code.`,
		Usage: "seatkit vt run [flags] -- <program> [args...]",
		Examples: []cli.Example{
			{
				Description: "Run a shell on a freshly allocated VT",
				Command:     "seatkit vt run -- /bin/bash --login",
			},
			{
				Description: "Run a compositor on VT 7",
				Command:     "seatkit vt run --vt 7 -- /usr/bin/sway",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path")
			flagSet.IntVar(&targetVT, "vt", 0, "target VT number (0 allocates a fresh VT)")
			flagSet.BoolVar(&priorOwnerGone, "prior-owner-gone", false,
				"the previous VT owner has exited and cannot acknowledge a release")
			flagSet.IntVar(&priorOwnerPID, "prior-owner-pid", 0,
				"probe this PID; treat the prior owner as gone when it is dead")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("vt run requires a program to execute")
			}
			if targetVT < 0 {
				return fmt.Errorf("--vt must be non-negative, got %d", targetVT)
			}

			ctx, err := newCommandContext(configPath)
			if err != nil {
				return err
			}

			vt := targetVT
			if vt == 0 {
				vt, err = ctx.controller.AllocateNew()
				if err != nil {
					return err
				}
			}

			gone := priorOwnerGone
			if priorOwnerPID > 0 && !process.Alive(priorOwnerPID) {
				gone = true
			}

			if err := ctx.controller.SwitchTo(vt, gone); err != nil {
				return err
			}

			return runOnVT(ctx, vt, args)
		},
	}
}

// runOnVT executes the program with /dev/ttyN as its controlling
// terminal and waits for it to finish.
func runOnVT(ctx *commandContext, vt int, args []string) error {
	tty, err := os.OpenFile(console.VTPath(vt), os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("opening %s for the session: %w", console.VTPath(vt), err)
	}
	defer tty.Close()

	command := exec.Command(args[0], args[1:]...)
	command.Stdin = tty
	command.Stdout = tty
	command.Stderr = tty

	// New session with the VT as controlling terminal (fd 0 in the
	// child is the tty), so job control and SIGHUP-on-close behave
	// like a login on that console.
	command.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
	}

	ctx.logger.Info("starting session program",
		"vt", vt, "program", args[0])

	if err := command.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			ctx.logger.Info("session program exited",
				"vt", vt, "program", args[0], "code", exitErr.ExitCode())
			return &cli.ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", args[0], err)
	}

	ctx.logger.Info("session program exited",
		"vt", vt, "program", args[0], "code", 0)
	return nil
}
