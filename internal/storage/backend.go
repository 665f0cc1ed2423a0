// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/tfctl/vardiff/internal/config"
	"github.com/tfctl/vardiff/internal/log"
)

// ErrNotFound is returned by Backend.Load when no blob has been saved yet.
var ErrNotFound = errors.New("store blob not found")

// Backend loads and saves one opaque blob. Save replaces the whole blob.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	// Remove deletes the blob. Removing a missing blob is not an error.
	Remove(ctx context.Context) error
	// String names the blob location for error messages.
	String() string
}

// NewBackend returns the Backend configured by store.backend for scope.
// Supported values are "file" (default) and "s3".
func NewBackend(ctx context.Context, scope string) (Backend, error) {
	kind, _ := config.GetString("store.backend", "file")
	log.Debugf("NewBackend: kind=%s scope=%s", kind, scope)

	switch kind {
	case "file", "":
		return NewFileBackend(scope)
	case "s3":
		bucket, _ := config.GetString("store.s3.bucket")
		prefix, _ := config.GetString("store.s3.prefix", "vardiff")
		region, _ := config.GetString("store.s3.region")
		profile, _ := config.GetString("store.s3.profile")
		return NewS3Backend(ctx, scope, S3Options{
			Bucket:  bucket,
			Prefix:  prefix,
			Region:  region,
			Profile: profile,
		})
	default:
		return nil, fmt.Errorf("unknown store.backend %q (want file or s3)", kind)
	}
}
