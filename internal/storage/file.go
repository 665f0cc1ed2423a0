// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tfctl/vardiff/internal/log"
)

// FileBackend keeps the blob in a single local file.
type FileBackend struct {
	Path string
}

// NewFileBackend returns the FileBackend for scope under Dir().
func NewFileBackend(scope string) (*FileBackend, error) {
	p, err := StorePath(scope)
	if err != nil {
		return nil, err
	}
	return &FileBackend{Path: p}, nil
}

// Load implements Backend.
func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	log.Debugf("file store read: path=%s bytes=%d", b.Path, len(data))
	return data, nil
}

// Save implements Backend. The blob is written to a temp file in the same
// directory and renamed over the target, so readers see the old or the new
// blob and never a torn one.
func (b *FileBackend) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(b.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close() //nolint:errcheck
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil { //nolint:mnd
		return err
	}
	if err := os.Rename(tmp.Name(), b.Path); err != nil {
		return err
	}

	log.Debugf("file store write: path=%s bytes=%d", b.Path, len(data))
	return nil
}

// Remove implements Backend.
func (b *FileBackend) Remove(_ context.Context) error {
	if err := os.Remove(b.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (b *FileBackend) String() string {
	return b.Path
}
