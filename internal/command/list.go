// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/vardiff/internal/config"
	"github.com/tfctl/vardiff/internal/meta"
	"github.com/tfctl/vardiff/internal/output"
)

// listCommandAction prints the registered variants of the scope.
func listCommandAction(ctx context.Context, cmd *cli.Command) error {
	store, scope, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}

	records, err := store.LoadAll(ctx)
	if err != nil {
		return err
	}

	titles := cmd.Bool("titles")
	if !cmd.IsSet("titles") {
		titles, _ = config.GetBool("titles", false)
	}

	format := cmd.String("output")
	if len(records) == 0 && format == "text" {
		_, err := fmt.Fprintf(stdout(cmd), "No variants registered in scope %s.\n", scope)
		return err
	}

	return output.Emit(stdout(cmd), records, output.Options{
		Format: format,
		Sort:   cmd.String("sort"),
		Titles: titles,
		Color:  ColorEnabled(cmd),
	})
}

// listCommandBuilder constructs the cli.Command for "list".
func listCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "list",
		Usage:     "list registered variants",
		UsageText: "vardiff list [options]",
		Flags: []cli.Flag{
			newColorFlag("list", meta.Config.Source),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format: text, json or yaml",
				Value:   "text",
				Validator: func(value string) error {
					return FlagValidators(value, OutputValidator)
				},
			},
			&cli.StringFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "comma-separated list of columns to sort by (prefix - to reverse)",
			},
			&cli.BoolFlag{
				Name:    "titles",
				Aliases: []string{"t"},
				Usage:   "show titles with text output",
			},
		},
		Action: listCommandAction,
		Meta:   meta,
	}).Build()
}
