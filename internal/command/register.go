// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/vardiff/internal/log"
	"github.com/tfctl/vardiff/internal/meta"
	"github.com/tfctl/vardiff/internal/storage"
	"github.com/tfctl/vardiff/internal/variant"
)

// clipboardRead is swapped out by tests.
var clipboardRead = clipboard.ReadAll

// registerCommandAction stores a body under <identifier> <label>. The body
// comes from FILE, stdin ("-" or no FILE), the clipboard or an editor.
func registerCommandAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: vardiff register <identifier> <label> [FILE|-]")
	}
	identifier, label := args[0], args[1]

	store, scope, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}

	var source string
	var body []byte
	switch {
	case cmd.Bool("clipboard"):
		source = "clipboard"
		text, cerr := clipboardRead()
		if cerr != nil {
			return fmt.Errorf("failed to read clipboard: %w", cerr)
		}
		body = []byte(text)
	case cmd.Bool("edit"):
		source = "editor"
		body, err = editBody(ctx, store, scope, identifier, label)
	case len(args) == 3 && args[2] != "-":
		source = args[2]
		body, err = os.ReadFile(args[2])
	default:
		source = "stdin"
		body, err = io.ReadAll(stdin(cmd))
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	if err := variant.ValidateBody(source, body); err != nil {
		return err
	}

	if err := store.Register(ctx, identifier, label, string(body)); err != nil {
		var ce *variant.CardinalityExceededError
		if errors.As(err, &ce) {
			log.Warnf("register rejected: %v", ce)
		}
		return err
	}

	_, err = fmt.Fprintf(stdout(cmd), "Registered %s/%s (%d bytes) in scope %s.\n",
		identifier, label, len(body), scope)
	return err
}

// editBody opens $VISUAL or $EDITOR on a scratch file prefilled with the body
// already registered under (identifier, label) and returns what was saved.
func editBody(ctx context.Context, store *variant.Store, scope, identifier, label string) ([]byte, error) {
	var existing string
	if g, err := store.Lookup(ctx, identifier); err == nil || errors.As(err, new(*variant.InsufficientVariantsError)) {
		for _, v := range g.Variants {
			if v.Label == label {
				existing = v.Body
			}
		}
	} else {
		return nil, err
	}

	dir := os.TempDir()
	if sd, err := storage.ScratchDir(scope); err == nil {
		dir = sd
	}
	if err := os.MkdirAll(dir, 0o700); err != nil { //nolint:mnd
		return nil, err
	}

	f, err := os.CreateTemp(dir, sanitize(identifier)+"-"+sanitize(label)+"-*.txt")
	if err != nil {
		return nil, err
	}
	path := f.Name()
	defer os.Remove(path) //nolint:errcheck

	if _, err := f.WriteString(existing); err != nil {
		f.Close() //nolint:errcheck,gosec
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	editor := editorCommand()
	log.Debugf("editing %s with %v", path, editor)

	ed := exec.CommandContext(ctx, editor[0], append(editor[1:], path)...) //nolint:gosec
	ed.Stdin, ed.Stdout, ed.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := ed.Run(); err != nil {
		return nil, fmt.Errorf("editor %s failed: %w", editor[0], err)
	}

	return os.ReadFile(path)
}

// editorCommand returns $VISUAL, else $EDITOR, else vi, split into words.
func editorCommand() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

// sanitize makes s usable inside a file name.
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == filepath.Separator || r == '/' || r == ':' || r == ' ' {
			return '_'
		}
		return r
	}, s)
	if cut := 32; len(s) > cut { //nolint:mnd
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// registerCommandBuilder constructs the cli.Command for "register".
func registerCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "register",
		Usage:     "register a variant body",
		UsageText: "vardiff register <identifier> <label> [FILE|-] [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "clipboard",
				Usage: "read the body from the clipboard",
			},
			&cli.BoolFlag{
				Name:    "edit",
				Aliases: []string{"e"},
				Usage:   "compose the body in $VISUAL or $EDITOR",
			},
		},
		Action: registerCommandAction,
		Meta:   meta,
	}).Build()
}
