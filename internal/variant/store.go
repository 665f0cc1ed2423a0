// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package variant

import (
	"context"
	"errors"
	"os"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tfctl/vardiff/internal/log"
	"github.com/tfctl/vardiff/internal/storage"
)

// Store is the variant collection of one scope.
type Store struct {
	backend    storage.Backend
	scratchDir string
}

// Option customizes a Store.
type Option func(*Store)

// WithScratchDir names a directory of scratch artifacts that Clear removes
// along with the blob.
func WithScratchDir(dir string) Option {
	return func(s *Store) { s.scratchDir = dir }
}

// New returns a Store persisting through backend.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{backend: backend}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register stores body under (identifier, label). An existing record with the
// same key is replaced in place. A new label for an identifier that already
// holds MaxVariants labels fails with *CardinalityExceededError. Nothing is
// saved when Register fails.
func (s *Store) Register(ctx context.Context, identifier, label, body string) error {
	if identifier == "" || label == "" {
		return ErrInvalidKey
	}
	if err := ValidateBody(identifier+"/"+label, []byte(body)); err != nil {
		return err
	}

	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	next, err := upsert(records, ContentVariant{Identifier: identifier, Label: label, Body: body})
	if err != nil {
		return err
	}

	if err := s.save(ctx, next); err != nil {
		return err
	}
	log.Debugf("registered %s/%s (%d bytes)", identifier, label, len(body))
	return nil
}

// upsert returns records with v applied, leaving records untouched.
func upsert(records []ContentVariant, v ContentVariant) ([]ContentVariant, error) {
	labels := mapset.NewThreadUnsafeSet[string]()
	var ordered []string
	for i, r := range records {
		if r.Identifier != v.Identifier {
			continue
		}
		if r.Label == v.Label {
			next := slices.Clone(records)
			next[i] = v
			return next, nil
		}
		if labels.Add(r.Label) {
			ordered = append(ordered, r.Label)
		}
	}

	if labels.Cardinality() >= MaxVariants {
		return nil, &CardinalityExceededError{
			Identifier: v.Identifier,
			Labels:     ordered,
			Rejected:   v.Label,
		}
	}
	return append(slices.Clone(records), v), nil
}

// LoadAll returns every record in registration order. The first call on a
// scope with no persisted store saves an empty one.
func (s *Store) LoadAll(ctx context.Context) ([]ContentVariant, error) {
	data, err := s.backend.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		log.Debugf("initializing empty store at %s", s.backend)
		if err := s.save(ctx, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: s.backend.String(), Err: err}
	}
	return s.decode(data)
}

// GroupByIdentifier partitions LoadAll by identifier.
func (s *Store) GroupByIdentifier(ctx context.Context) ([]Group, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return GroupRecords(records), nil
}

// Lookup returns the group for identifier. A missing identifier yields an
// *InsufficientVariantsError with a zero count.
func (s *Store) Lookup(ctx context.Context, identifier string) (Group, error) {
	groups, err := s.GroupByIdentifier(ctx)
	if err != nil {
		return Group{}, err
	}
	for _, g := range groups {
		if g.Identifier == identifier {
			return g, nil
		}
	}
	return Group{Identifier: identifier}, &InsufficientVariantsError{Identifier: identifier}
}

// Clear deletes the persisted store and the scratch directory.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Remove(ctx); err != nil {
		return &IOError{Op: "remove", Path: s.backend.String(), Err: err}
	}
	if s.scratchDir != "" {
		if err := os.RemoveAll(s.scratchDir); err != nil {
			return &IOError{Op: "remove", Path: s.scratchDir, Err: err}
		}
	}
	log.Debugf("cleared store %s", s.backend)
	return nil
}

// load is LoadAll without first-use initialization, for read-modify-write.
func (s *Store) load(ctx context.Context) ([]ContentVariant, error) {
	data, err := s.backend.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: s.backend.String(), Err: err}
	}
	return s.decode(data)
}

func (s *Store) decode(data []byte) ([]ContentVariant, error) {
	records, err := Decode(data)
	if err != nil {
		return nil, &DecodeError{Source: s.backend.String(), Err: err}
	}
	log.TraceDump("records", records)
	return records, nil
}

func (s *Store) save(ctx context.Context, records []ContentVariant) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	if err := s.backend.Save(ctx, data); err != nil {
		return &IOError{Op: "write", Path: s.backend.String(), Err: err}
	}
	return nil
}
