// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vt

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/seatkit/seatkit/cmd/seatkit/cli"
	"github.com/seatkit/seatkit/lib/console"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// statusMaxVT bounds the table. Linux supports 63 VTs but consoles
// beyond the usual getty range are rarely interesting.
const statusMaxVT = 12

// vtRow is one line of the status table.
type vtRow struct {
	VT            int
	DevicePresent bool
	Active        bool
}

// statusCommand prints a per-VT overview table.
func statusCommand() *cli.Command {
	var maxVT int

	return &cli.Command{
		Name:    "status",
		Summary: "Show a per-VT overview table",
		Description: `Show which virtual terminals exist and which one is active.

Device presence is read from /dev, the active VT from sysfs; neither
requires privileges. Output is a styled table when stdout is a
terminal and plain columns otherwise.`,
		Usage: "seatkit vt status [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("status", pflag.ContinueOnError)
			flagSet.IntVar(&maxVT, "max-vt", statusMaxVT, "highest VT number to list")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("vt status takes no arguments")
			}
			if maxVT <= 0 {
				return fmt.Errorf("--max-vt must be positive, got %d", maxVT)
			}

			// A serial or hypervisor console has no active VT; the
			// table is still useful, just without an active marker.
			active, err := console.ActiveVT()
			if err != nil {
				active = 0
			}

			rows := collectStatus(active, devicePresent, maxVT)
			styled := term.IsTerminal(int(os.Stdout.Fd()))
			fmt.Print(renderStatus(rows, styled))
			return nil
		},
	}
}

// devicePresent reports whether /dev/ttyN exists.
func devicePresent(vt int) bool {
	_, err := os.Stat(console.VTPath(vt))
	return err == nil
}

// collectStatus builds the table rows for VTs 1..maxVT.
func collectStatus(active int, present func(int) bool, maxVT int) []vtRow {
	rows := make([]vtRow, 0, maxVT)
	for vt := 1; vt <= maxVT; vt++ {
		rows = append(rows, vtRow{
			VT:            vt,
			DevicePresent: present(vt),
			Active:        vt == active,
		})
	}
	return rows
}

// renderStatus formats the rows as a table. With styled set the header
// is bold and the active row highlighted; otherwise the output is
// plain fixed-width columns suitable for piping.
func renderStatus(rows []vtRow, styled bool) string {
	headerStyle := lipgloss.NewStyle().Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	var out strings.Builder

	header := fmt.Sprintf("%-6s %-9s %s", "VT", "DEVICE", "ACTIVE")
	if styled {
		header = headerStyle.Render(header)
	}
	out.WriteString(header)
	out.WriteByte('\n')

	for _, row := range rows {
		device := "absent"
		if row.DevicePresent {
			device = "present"
		}
		marker := ""
		if row.Active {
			marker = "*"
		}

		line := fmt.Sprintf("%-6s %-9s %s", fmt.Sprintf("tty%d", row.VT), device, marker)
		if styled && row.Active {
			line = activeStyle.Render(line)
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}

	return out.String()
}
