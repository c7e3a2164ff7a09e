// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for seatkit binaries.
//
// Configuration is loaded from a single YAML file specified by:
//   - the SEATKIT_CONFIG environment variable, or
//   - the --config flag passed to the command.
//
// There are no fallbacks or automatic discovery. When neither source
// names a file, the built-in defaults apply. This keeps configuration
// deterministic and auditable with no hidden overrides.
package config
