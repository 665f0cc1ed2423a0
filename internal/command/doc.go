// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for vardiff. It wires flags,
// validators and actions for the register, diff, list and clear subcommands.
package command
