// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir_WithVARDIFF_STORE_DIR verifies Dir() respects VARDIFF_STORE_DIR
// with highest priority.
func TestDir_WithVARDIFF_STORE_DIR(t *testing.T) {
	customDir := t.TempDir()
	t.Setenv("VARDIFF_STORE_DIR", customDir)

	result, ok := Dir()

	assert.True(t, ok)
	assert.Equal(t, customDir, result)
}

// TestDir_WithoutVARDIFF_STORE_DIR verifies Dir() falls back to
// os.UserCacheDir/vardiff when the env var is empty.
func TestDir_WithoutVARDIFF_STORE_DIR(t *testing.T) {
	t.Setenv("VARDIFF_STORE_DIR", "")

	result, ok := Dir()

	if ok {
		assert.True(t, filepath.IsAbs(result))
		assert.Equal(t, "vardiff", filepath.Base(result))
	}
}

func TestEnsureBaseDir_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv("VARDIFF_STORE_DIR", dir)

	base, ok, err := EnsureBaseDir()

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, dir, base)
	assert.DirExists(t, dir)
}

func TestStorePathAndScratchDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VARDIFF_STORE_DIR", dir)

	p1, err := StorePath("project")
	require.NoError(t, err)
	p2, err := StorePath("project")
	require.NoError(t, err)
	other, err := StorePath("other/../weird name")
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.NotEqual(t, p1, other)
	assert.True(t, strings.HasPrefix(p1, filepath.Join(dir, storesDir)))
	assert.Equal(t, ".yaml", filepath.Ext(p1))
	assert.Equal(t, filepath.Join(dir, storesDir), filepath.Dir(other))

	scratch, err := ScratchDir("project")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, scratchDir, encodeKey("project")), scratch)
}

func TestPurge(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VARDIFF_STORE_DIR", dir)

	scratch, err := ScratchDir("p")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(scratch, 0o755))

	oldFile := filepath.Join(scratch, "old.txt")
	newFile := filepath.Join(scratch, "new.txt")
	require.NoError(t, os.WriteFile(oldFile, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(newFile, []byte("y"), 0o600))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, past, past))

	store, err := StorePath("p")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(store), 0o755))
	require.NoError(t, os.WriteFile(store, []byte("version: 1\n"), 0o600))
	require.NoError(t, os.Chtimes(store, past, past))

	require.NoError(t, Purge(24))

	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, newFile)
	assert.FileExists(t, store, "stores are never purged")
}

func TestPurge_Disabled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VARDIFF_STORE_DIR", dir)

	assert.NoError(t, Purge(0))
	assert.NoError(t, Purge(-1))
	// Missing scratch root is fine.
	assert.NoError(t, Purge(1))
}
