// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/vardiff/internal/config"
	"github.com/tfctl/vardiff/internal/differ"
	"github.com/tfctl/vardiff/internal/log"
	"github.com/tfctl/vardiff/internal/meta"
	"github.com/tfctl/vardiff/internal/variant"
)

// identicalMsg is printed for a pair whose texts match exactly.
const identicalMsg = "The variants are identical."

// selectPair is swapped out by tests.
var selectPair = differ.SelectPair

// diffSide is one side of a comparison.
type diffSide struct {
	name string
	body []byte
}

// diffCommandAction diffs two files, or every pair of every stored group.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	switch len(args) {
	case 0:
	case 2:
		return diffFiles(cmd, args[0], args[1])
	default:
		return fmt.Errorf("usage: vardiff diff [FILE_A FILE_B]")
	}

	store, scope, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("pick") {
		return diffPicked(ctx, cmd, store)
	}

	var groups []variant.Group
	if ids := cmd.StringSlice("id"); len(ids) > 0 {
		for _, id := range ids {
			g, err := store.Lookup(ctx, id)
			if err != nil && !errors.As(err, new(*variant.InsufficientVariantsError)) {
				return err
			}
			groups = append(groups, g)
		}
	} else if groups, err = store.GroupByIdentifier(ctx); err != nil {
		return err
	}

	if len(groups) == 0 {
		_, err := fmt.Fprintf(stdout(cmd), "No variants registered in scope %s.\n", scope)
		return err
	}

	for _, g := range groups {
		pairs, err := g.Pairs()
		var ie *variant.InsufficientVariantsError
		if errors.As(err, &ie) {
			log.Warnf("skipping group: %v", ie)
			fmt.Fprintf(stderr(cmd), "Skipping %s: %v\n", g.Identifier, ie) //nolint:errcheck
			continue
		}
		if err != nil {
			return err
		}

		for _, p := range pairs {
			if err := diffPair(cmd, p.Identifier,
				diffSide{name: p.Left.Label, body: []byte(p.Left.Body)},
				diffSide{name: p.Right.Label, body: []byte(p.Right.Body)},
			); err != nil {
				return err
			}
		}
	}

	return nil
}

// diffFiles compares two files directly, bypassing the store.
func diffFiles(cmd *cli.Command, a, b string) error {
	left, err := os.ReadFile(a)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", a, err)
	}
	right, err := os.ReadFile(b)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", b, err)
	}

	for _, side := range []diffSide{{a, left}, {b, right}} {
		if err := variant.ValidateBody(side.name, side.body); err != nil {
			return err
		}
	}

	return diffPair(cmd, "", diffSide{a, left}, diffSide{b, right})
}

// diffPicked lets the user choose two stored variants interactively.
func diffPicked(ctx context.Context, cmd *cli.Command, store *variant.Store) error {
	records, err := store.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(records) < 2 {
		return fmt.Errorf("need at least 2 stored variants to pick from, have %d", len(records))
	}

	choices := make([]differ.Choice, len(records))
	for i, r := range records {
		choices[i] = differ.Choice{Identifier: r.Identifier, Label: r.Label, Lines: r.Lines()}
	}

	picked, err := selectPair(choices)
	if err != nil {
		return err
	}
	if len(picked) != 2 {
		log.Debug("picker cancelled")
		return nil
	}

	l, r := records[picked[0]], records[picked[1]]
	if l.Identifier == r.Identifier {
		return diffPair(cmd, l.Identifier,
			diffSide{name: l.Label, body: []byte(l.Body)},
			diffSide{name: r.Label, body: []byte(r.Body)})
	}
	return diffPair(cmd, "",
		diffSide{name: l.Identifier + "/" + l.Label, body: []byte(l.Body)},
		diffSide{name: r.Identifier + "/" + r.Label, body: []byte(r.Body)})
}

// diffPair writes the header and the diff of one pair.
func diffPair(cmd *cli.Command, identifier string, left, right diffSide) error {
	w := stdout(cmd)
	color := ColorEnabled(cmd)
	r := differ.NewRenderer(w, differ.WithColor(color), differ.WithStyles(stylesFromConfig()))

	if err := r.Header(identifier, left.name, right.name); err != nil {
		return err
	}

	if cmd.Bool("json") {
		if differ.IsJSONObject(left.body) && differ.IsJSONObject(right.body) {
			ignore := cmd.StringSlice("json_ignore")
			if len(ignore) == 0 {
				ignore, _ = config.GetStringSlice("json_ignore")
			}
			changed, err := differ.JSONDiff(w, left.body, right.body, ignore, color)
			if err != nil {
				return err
			}
			if !changed {
				return r.Note(identicalMsg)
			}
			return nil
		}
		log.Warnf("%s -> %s: not JSON objects; using line diff", left.name, right.name)
	}

	script := differ.Compute(string(left.body), string(right.body))
	log.Debugf("diff %s -> %s: %+v", left.name, right.name, script.Stats())

	if script.Identical() {
		return r.Note(identicalMsg)
	}

	if pattern := cmd.String("filter"); pattern != "" {
		script = differ.Filter(script, pattern)
	}

	if cmd.Bool("stat") {
		return r.Stat(script)
	}
	return r.Render(script)
}

// stylesFromConfig builds diff styles from the colors.* config keys, falling
// back to the default palette.
func stylesFromConfig() differ.Styles {
	header, _ := config.GetString("colors.header", "4")
	inserted, _ := config.GetString("colors.inserted", "2")
	removed, _ := config.GetString("colors.removed", "1")
	note, _ := config.GetString("colors.note", "3")
	return differ.NewStyles(lipgloss.Color(header), lipgloss.Color(inserted),
		lipgloss.Color(removed), lipgloss.Color(note))
}

// diffCommandBuilder constructs the cli.Command for "diff".
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "diff",
		Usage:     "diff stored variants or two files",
		UsageText: "vardiff diff [FILE_A FILE_B] [options]",
		Flags: []cli.Flag{
			newColorFlag("diff", meta.Config.Source),
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "only flag changed lines containing this text",
			},
			&cli.StringSliceFlag{
				Name:  "id",
				Usage: "identifiers to diff (default all)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "structural diff for JSON object bodies",
			},
			&cli.StringSliceFlag{
				Name:  "json_ignore",
				Usage: "top-level JSON keys to ignore with --json",
			},
			&cli.BoolFlag{
				Name:    "pick",
				Aliases: []string{"p"},
				Usage:   "choose two variants interactively",
			},
			&cli.BoolFlag{
				Name:  "stat",
				Usage: "print line counts instead of the diff",
			},
		},
		Action: diffCommandAction,
		Meta:   meta,
	}).Build()
}
