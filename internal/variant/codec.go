// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package variant

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const formatVersion = 1

// document is the persisted layout of a store blob.
type document struct {
	Version  int             `yaml:"version"`
	Variants []storedVariant `yaml:"variants"`
}

// storedVariant is a ContentVariant as written to a blob. Values are always
// double-quoted: block scalars cannot hold a body that opens with a tab or
// one made only of blank lines.
type storedVariant ContentVariant

func (v storedVariant) MarshalYAML() (interface{}, error) {
	scalar := func(value string, style yaml.Style) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: style}
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalar("identifier", 0), scalar(v.Identifier, yaml.DoubleQuotedStyle),
			scalar("label", 0), scalar(v.Label, yaml.DoubleQuotedStyle),
			scalar("body", 0), scalar(v.Body, yaml.DoubleQuotedStyle),
		},
	}, nil
}

// Encode serializes records in order. The output is decoded again and must
// yield records unchanged.
func Encode(records []ContentVariant) ([]byte, error) {
	doc := document{Version: formatVersion, Variants: make([]storedVariant, len(records))}
	for i, r := range records {
		doc.Variants[i] = storedVariant(r)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode store: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode store: %w", err)
	}

	back, err := Decode(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encoded store does not decode: %w", err)
	}
	if !slices.Equal(back, records) {
		return nil, errors.New("encoded store does not round-trip")
	}
	return buf.Bytes(), nil
}

// Decode parses a blob written by Encode. An empty blob is an empty store.
func Decode(data []byte) ([]ContentVariant, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("unsupported store version %d", doc.Version)
	}

	records := make([]ContentVariant, len(doc.Variants))
	seen := map[[2]string]bool{}
	for i, sv := range doc.Variants {
		r := ContentVariant(sv)
		if r.Identifier == "" || r.Label == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrInvalidKey)
		}
		if !utf8.ValidString(r.Body) {
			return nil, fmt.Errorf("record %d: body is not valid UTF-8", i)
		}
		key := [2]string{r.Identifier, r.Label}
		if seen[key] {
			return nil, fmt.Errorf("record %d: duplicate key %s/%s", i, r.Identifier, r.Label)
		}
		seen[key] = true
		records[i] = r
	}
	return records, nil
}

// ValidateBody rejects bodies that are not valid UTF-8.
func ValidateBody(source string, body []byte) error {
	if !utf8.Valid(body) {
		return &DecodeError{Source: source, Err: errors.New("content is not valid UTF-8")}
	}
	return nil
}
