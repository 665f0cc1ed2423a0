// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ParseScopeDir parses a "dir[::scope]" spec and returns the absolute
// directory and the scope name. Without an explicit ::scope the scope is the
// directory's base name. It returns an error if the fs entry does not exist,
// is empty or is not a directory.
func ParseScopeDir(spec string) (string, string, error) {
	if spec == "" {
		return "", "", os.ErrInvalid
	}

	var dir, scope string

	parts := strings.SplitN(spec, "::", 2)
	if len(parts) > 1 {
		scope = parts[1]
	}

	dir, err := filepath.Abs(parts[0])
	if err != nil {
		return "", "", err
	}

	if r, err := os.Stat(dir); err != nil {
		return "", "", err
	} else if !r.IsDir() {
		return "", "", os.ErrInvalid
	}

	if scope == "" {
		scope = ScopeName(dir)
	}

	return dir, scope, nil
}

// ScopeName derives a scope from a directory: its base name, or "root" for
// the filesystem root.
func ScopeName(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == string(filepath.Separator) || base == "." || base == "" {
		return "root"
	}
	return base
}
