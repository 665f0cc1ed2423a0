// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/vardiff/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"vardiff", "list"},
			expected: []string{"vardiff", "list"},
		},
		{
			name:     "no duplicates",
			args:     []string{"vardiff", "list", "--output", "text", "--titles"},
			expected: []string{"vardiff", "list", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"vardiff", "list", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"vardiff", "list", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"vardiff", "diff", "--stat", "--json", "--stat"},
			expected: []string{"vardiff", "diff", "--json", "--stat"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"vardiff", "list", "--output=json", "--titles", "--output=text"},
			expected: []string{"vardiff", "list", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax",
			args:     []string{"vardiff", "list", "--output=json", "--output", "text"},
			expected: []string{"vardiff", "list", "--output", "text"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"vardiff", "register", "cfg", "old", "--scope", "a", "--scope", "b"},
			expected: []string{"vardiff", "register", "cfg", "old", "--scope", "b"},
		},
		{
			name:     "stdin dash is positional",
			args:     []string{"vardiff", "register", "cfg", "old", "-"},
			expected: []string{"vardiff", "register", "cfg", "old", "-"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"vardiff", "diff", "-f", "a", "-f", "b"},
			expected: []string{"vardiff", "diff", "-f", "b"},
		},
		{
			name:     "args after double dash untouched",
			args:     []string{"vardiff", "diff", "-f", "a", "--", "-f", "b"},
			expected: []string{"vardiff", "diff", "-f", "a", "--", "-f", "b"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"vardiff", "list", "--sort", "a", "--sort", "b", "--sort", "c"},
			expected: []string{"vardiff", "list", "--sort", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args))
		})
	}
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		insertIdx int
		entries   []string
		expected  []string
	}{
		{
			name:      "no entries",
			args:      []string{"vardiff", "diff", "--stat"},
			insertIdx: 2,
			expected:  []string{"vardiff", "diff", "--stat"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"vardiff", "diff", "--stat"},
			insertIdx: 2,
			entries:   []string{"--color never"},
			expected:  []string{"vardiff", "diff", "--color", "never", "--stat"},
		},
		{
			name:      "insert after positional",
			args:      []string{"vardiff", "diff", "a.txt", "b.txt"},
			insertIdx: 4,
			entries:   []string{"--json", "--json_ignore id"},
			expected:  []string{"vardiff", "diff", "a.txt", "b.txt", "--json", "--json_ignore", "id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, injectConfigSet(tt.args, tt.entries, tt.insertIdx))
		})
	}
}

func TestExpandArgSet(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "vardiff.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
diff:
  defaults:
    - --color never
  wide:
    - --stat
`), 0o600))
	t.Setenv("VARDIFF_CFG_FILE", cfg)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	assert.Equal(t,
		[]string{"vardiff", "diff", "--color", "never", "--id", "x"},
		expandArgSet([]string{"vardiff", "diff", "--id", "x"}))

	assert.Equal(t,
		[]string{"vardiff", "diff", "--id", "x", "--stat"},
		expandArgSet([]string{"vardiff", "diff", "--id", "x", "@wide"}))

	assert.Equal(t,
		[]string{"vardiff", "list"},
		expandArgSet([]string{"vardiff", "list"}))
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".vardiff.env")
	require.NoError(t, os.WriteFile(path, []byte("VARDIFF_SCOPE=fromfile\nVARDIFF_LOG=debug\nOTHER=x\n"), 0o600))

	t.Setenv("VARDIFF_LOG", "error")
	t.Setenv("VARDIFF_SCOPE", "")
	require.NoError(t, os.Unsetenv("VARDIFF_SCOPE"))
	t.Setenv("OTHER", "")
	require.NoError(t, os.Unsetenv("OTHER"))

	require.NoError(t, loadEnvFile(path))

	assert.Equal(t, "fromfile", os.Getenv("VARDIFF_SCOPE"))
	assert.Equal(t, "error", os.Getenv("VARDIFF_LOG"))
	_, ok := os.LookupEnv("OTHER")
	assert.False(t, ok)

	assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"vardiff", "--help"}, handleNakedCommand([]string{"vardiff"}))
	assert.Equal(t, []string{"vardiff", "list"}, handleNakedCommand([]string{"vardiff", "list"}))
}
