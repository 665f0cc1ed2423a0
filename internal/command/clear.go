// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/vardiff/internal/meta"
)

func clearCommandAction(ctx context.Context, cmd *cli.Command) error {
	store, scope, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}

	if err := store.Clear(ctx); err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout(cmd), "Cleared scope %s.\n", scope)
	return err
}

// clearCommandBuilder constructs the cli.Command for "clear".
func clearCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "clear",
		Usage:     "delete every variant of the scope",
		UsageText: "vardiff clear [options]",
		Action:    clearCommandAction,
		Meta:      meta,
	}).Build()
}
