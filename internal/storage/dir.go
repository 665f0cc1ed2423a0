// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/vardiff/internal/log"
)

const (
	storesDir  = "stores"
	scratchDir = "scratch"
)

// Dir resolves the base data directory.
// Precedence:
//  1. VARDIFF_STORE_DIR, if set and non-empty
//  2. os.UserCacheDir()/vardiff
//
// Returns ("", false) if a base cannot be resolved.
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("VARDIFF_STORE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "vardiff"), true
	}
	return "", false
}

// EnsureBaseDir creates the base directory if a path can be resolved. Returns
// the path, whether it is usable, and an error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	base, ok := Dir()
	if !ok {
		return "", false, nil
	}

	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create store base directory: %w", err)
	}
	log.Debugf("ensured store dir: path=%s", base)
	return base, true, nil
}

// StorePath returns the file holding scope's blob. Scope names are hashed so
// any string is a safe file name.
func StorePath(scope string) (string, error) {
	base, ok := Dir()
	if !ok {
		return "", fmt.Errorf("cannot resolve store directory; set VARDIFF_STORE_DIR")
	}
	return filepath.Join(base, storesDir, encodeKey(scope)+".yaml"), nil
}

// ScratchDir returns the directory holding scope's scratch files, such as the
// files opened in an editor by register --edit.
func ScratchDir(scope string) (string, error) {
	base, ok := Dir()
	if !ok {
		return "", fmt.Errorf("cannot resolve store directory; set VARDIFF_STORE_DIR")
	}
	return filepath.Join(base, scratchDir, encodeKey(scope)), nil
}

// Purge removes scratch files older than the provided number of hours.
// If hours <= 0 or the base dir cannot be resolved, it is a no-op. Stores are
// never purged.
func Purge(hours int) error {
	if hours <= 0 {
		log.Debug("scratch cleaning disabled")
		return nil
	}

	base, ok := Dir()
	if !ok {
		return nil
	}
	root := filepath.Join(base, scratchDir)

	maxAge := time.Duration(hours) * time.Hour
	if err := filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}

		if info == nil {
			return nil
		}

		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed scratch file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove scratch file %s", path)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to purge scratch files: %w", err)
	}
	return nil
}

// encodeKey returns the hex sha256 of input.
func encodeKey(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}
