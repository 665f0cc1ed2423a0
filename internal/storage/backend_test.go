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

	"github.com/tfctl/vardiff/internal/config"
)

func withConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("VARDIFF_CFG_FILE", path)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

func TestNewBackend(t *testing.T) {
	ctx := context.Background()
	t.Setenv("VARDIFF_STORE_DIR", t.TempDir())

	t.Run("default is file", func(t *testing.T) {
		withConfig(t, "scope: x\n")
		be, err := NewBackend(ctx, "proj")
		require.NoError(t, err)
		assert.IsType(t, &FileBackend{}, be)
	})

	t.Run("s3", func(t *testing.T) {
		withConfig(t, "store:\n  backend: s3\n  s3:\n    bucket: bkt\n    region: us-east-1\n")
		be, err := NewBackend(ctx, "proj")
		require.NoError(t, err)
		s3be, ok := be.(*S3Backend)
		require.True(t, ok)
		assert.Equal(t, "bkt", s3be.Bucket)
		assert.Equal(t, "vardiff/proj.yaml", s3be.Key)
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		withConfig(t, "store:\n  backend: s3\n")
		_, err := NewBackend(ctx, "proj")
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		withConfig(t, "store:\n  backend: ftp\n")
		_, err := NewBackend(ctx, "proj")
		assert.ErrorContains(t, err, "unknown store.backend")
	})
}
