// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/vardiff/internal/config"
	"github.com/tfctl/vardiff/internal/meta"
	"github.com/tfctl/vardiff/internal/version"
)

// InitApp builds the root command. args[1], when it is not a flag, names the
// subcommand and doubles as the config namespace.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}
	config.Config.Namespace = ns

	cfg, _ := config.Load() //nolint:errcheck
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		ScopeDir:    sd,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:                  "vardiff",
		Usage:                 "register text variants and diff them",
		Version:               version.Version,
		EnableShellCompletion: true,
		HideVersion:           true,
	}

	app.Commands = append(app.Commands,
		clearCommandBuilder(m),
		diffCommandBuilder(m),
		listCommandBuilder(m),
		registerCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
