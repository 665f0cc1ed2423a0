// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for vardiff's user
// configuration. The configuration is a YAML document named vardiff.yaml in
// the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/vardiff.yaml or $HOME/.config/vardiff.yaml
//   - macOS: $HOME/Library/Application Support/vardiff.yaml
//   - Windows: %APPDATA%/vardiff.yaml
//
// VARDIFF_CFG_FILE overrides the location.
package config
