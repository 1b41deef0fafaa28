// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for muse.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation. File location: ~/.muse/config.toml.
package config
