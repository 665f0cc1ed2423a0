// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/vardiff/internal/log"
	"github.com/tfctl/vardiff/internal/meta"
	"github.com/tfctl/vardiff/internal/storage"
	"github.com/tfctl/vardiff/internal/util"
	"github.com/tfctl/vardiff/internal/variant"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ResolveScope returns the scope for cmd. An explicit --dir "dir[::scope]"
// spec wins, then --scope (flag, env or config), then the base name of the
// working directory.
func ResolveScope(cmd *cli.Command) (string, error) {
	dir := cmd.String("dir")
	if dir == "" {
		if s := cmd.String("scope"); s != "" {
			return s, nil
		}
		dir = GetMeta(cmd).ScopeDir
	}
	if dir == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			return "", err
		}
	}

	_, scope, err := util.ParseScopeDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to parse --dir (%s): %w", dir, err)
	}
	return scope, nil
}

// OpenStore returns the variant store of cmd's scope along with the scope
// name.
func OpenStore(ctx context.Context, cmd *cli.Command) (*variant.Store, string, error) {
	scope, err := ResolveScope(cmd)
	if err != nil {
		return nil, "", err
	}

	be, err := storage.NewBackend(ctx, scope)
	if err != nil {
		return nil, "", err
	}

	var opts []variant.Option
	if dir, err := storage.ScratchDir(scope); err == nil {
		opts = append(opts, variant.WithScratchDir(dir))
	}

	log.Debugf("store opened: scope=%s backend=%s", scope, be)
	return variant.New(be, opts...), scope, nil
}

// ColorEnabled resolves --color: "always", "never", or "auto" which colors
// only a terminal stdout with NO_COLOR unset.
func ColorEnabled(cmd *cli.Command) bool {
	switch cmd.String("color") {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec
}

// stdout returns the root command's writer.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// stderr returns the root command's error writer.
func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// stdin returns the root command's reader.
func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
