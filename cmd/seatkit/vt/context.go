// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vt

import (
	"log/slog"
	"os"

	"github.com/seatkit/seatkit/lib/config"
	"github.com/seatkit/seatkit/lib/vtswitch"
)

// commandContext carries the wired-up dependencies every subcommand
// needs: the loaded configuration, a logger built from it, and a
// controller over the real VT devices.
type commandContext struct {
	configuration config.Config
	logger        *slog.Logger
	controller    *vtswitch.Controller
}

// newCommandContext loads configuration (explicit path, then the
// SEATKIT_CONFIG environment variable, then defaults) and builds the
// logger and controller from it. Diagnostics go to stderr so command
// output on stdout stays machine-readable.
func newCommandContext(configPath string) (*commandContext, error) {
	configuration, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := configuration.Logging.NewLogger(os.Stderr)
	if err != nil {
		return nil, err
	}

	controller := vtswitch.New(vtswitch.Params{
		Logger:        logger,
		MasterPath:    configuration.Console.Master,
		ReleaseSignal: configuration.Handshake.ReleaseSignalNumber(),
		AcquireSignal: configuration.Handshake.AcquireSignalNumber(),
	})

	return &commandContext{
		configuration: configuration,
		logger:        logger,
		controller:    controller,
	}, nil
}
