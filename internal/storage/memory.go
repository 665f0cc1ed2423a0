// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"bytes"
	"context"
)

// MemoryBackend holds the blob in memory. SaveErr, when set, is returned by
// Save without touching the blob.
type MemoryBackend struct {
	Data    []byte
	Exists  bool
	SaveErr error
	Saves   int
}

// Load implements Backend.
func (m *MemoryBackend) Load(_ context.Context) ([]byte, error) {
	if !m.Exists {
		return nil, ErrNotFound
	}
	return bytes.Clone(m.Data), nil
}

// Save implements Backend.
func (m *MemoryBackend) Save(_ context.Context, data []byte) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Data = bytes.Clone(data)
	m.Exists = true
	m.Saves++
	return nil
}

// Remove implements Backend.
func (m *MemoryBackend) Remove(_ context.Context) error {
	m.Data = nil
	m.Exists = false
	return nil
}

func (m *MemoryBackend) String() string {
	return "memory"
}
