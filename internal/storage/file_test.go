// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	t.Setenv("VARDIFF_STORE_DIR", t.TempDir())

	b, err := NewFileBackend("scope")
	require.NoError(t, err)

	_, err = b.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Save(ctx, []byte("first")))
	require.NoError(t, b.Save(ctx, []byte("second")))

	data, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(b.Path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	info, err := os.Stat(b.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, b.Remove(ctx))
	require.NoError(t, b.Remove(ctx), "removing twice is fine")
	_, err = b.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileBackend_LoadErrorCarriesPath(t *testing.T) {
	dir := t.TempDir()
	b := &FileBackend{Path: dir} // a directory cannot be read as a file

	_, err := b.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), dir)
	assert.Equal(t, dir, b.String())
}

func TestMemoryBackend(t *testing.T) {
	ctx := context.Background()
	m := &MemoryBackend{}

	_, err := m.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	in := []byte("abc")
	require.NoError(t, m.Save(ctx, in))
	in[0] = 'x'

	out, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
	assert.Equal(t, 1, m.Saves)

	require.NoError(t, m.Remove(ctx))
	_, err = m.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
