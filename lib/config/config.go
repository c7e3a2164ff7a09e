// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"gopkg.in/yaml.v3"
)

// EnvVariable names the config file when no --config flag is given.
const EnvVariable = "SEATKIT_CONFIG"

// Config is the master configuration for seatkit binaries.
type Config struct {
	// Console configures the VT device paths.
	Console ConsoleConfig `yaml:"console"`

	// Handshake configures the VT ownership handshake signals.
	Handshake HandshakeConfig `yaml:"handshake"`

	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`
}

// ConsoleConfig locates the kernel VT devices.
type ConsoleConfig struct {
	// Master is the VT master control device. Default /dev/tty0.
	Master string `yaml:"master"`
}

// HandshakeConfig selects the two real-time signals the kernel
// delivers for VT release and acquisition. They are process-wide:
// a hosting process that already uses the defaults elsewhere must
// move the handshake to different numbers.
type HandshakeConfig struct {
	// ReleaseSignal defaults to SIGRTMAX (64 on Linux).
	ReleaseSignal int `yaml:"release_signal"`

	// AcquireSignal defaults to SIGRTMAX-1 (63 on Linux).
	AcquireSignal int `yaml:"acquire_signal"`
}

// ReleaseSignalNumber returns the release signal as a syscall.Signal.
func (h HandshakeConfig) ReleaseSignalNumber() syscall.Signal {
	return syscall.Signal(h.ReleaseSignal)
}

// AcquireSignalNumber returns the acquire signal as a syscall.Signal.
func (h HandshakeConfig) AcquireSignalNumber() syscall.Signal {
	return syscall.Signal(h.AcquireSignal)
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error. Default info.
	Level string `yaml:"level"`

	// Format is json or text. Default json.
	Format string `yaml:"format"`
}

// The Linux real-time signal range as the kernel defines it. Numbers
// below rtSignalMin are standard signals with fixed meanings; the
// handshake must not squat on those.
const (
	rtSignalMin = 32
	rtSignalMax = 64
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Console: ConsoleConfig{
			Master: "/dev/tty0",
		},
		Handshake: HandshakeConfig{
			ReleaseSignal: 64,
			AcquireSignal: 63,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the configuration. An explicit path (from --config) wins;
// otherwise the SEATKIT_CONFIG environment variable is consulted; with
// neither set the defaults are returned. Fields absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvVariable)
	}
	configuration := Default()
	if path == "" {
		return configuration, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := configuration.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return configuration, nil
}

// Validate checks field values. Called by Load for file-sourced
// configuration; Default always validates.
func (c Config) Validate() error {
	if c.Console.Master == "" {
		return fmt.Errorf("console.master must not be empty")
	}
	for name, number := range map[string]int{
		"handshake.release_signal": c.Handshake.ReleaseSignal,
		"handshake.acquire_signal": c.Handshake.AcquireSignal,
	} {
		if number < rtSignalMin || number > rtSignalMax {
			return fmt.Errorf("%s is %d, must be a real-time signal (%d-%d)",
				name, number, rtSignalMin, rtSignalMax)
		}
	}
	if c.Handshake.ReleaseSignal == c.Handshake.AcquireSignal {
		return fmt.Errorf("handshake release and acquire signals must differ (both %d)",
			c.Handshake.ReleaseSignal)
	}
	if _, err := c.Logging.slogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format is %q, must be json or text", c.Logging.Format)
	}
	return nil
}

// NewLogger builds the configured slog logger writing to w.
func (l LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.slogLevel()
	if err != nil {
		return nil, err
	}
	options := &slog.HandlerOptions{Level: level}
	if l.Format == "text" {
		return slog.New(slog.NewTextHandler(w, options)), nil
	}
	return slog.New(slog.NewJSONHandler(w, options)), nil
}

func (l LoggingConfig) slogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("logging.level is %q, must be debug, info, warn, or error", l.Level)
}
