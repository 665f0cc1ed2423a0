// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package variant

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned when an identifier or label is empty.
var ErrInvalidKey = errors.New("identifier and label must be non-empty")

// CardinalityExceededError rejects a registration that would give Identifier
// more than MaxVariants labels. The store is left unmodified.
type CardinalityExceededError struct {
	Identifier string
	Labels     []string
	Rejected   string
}

func (e *CardinalityExceededError) Error() string {
	return fmt.Sprintf("identifier %q already has %d variants (%s); cannot add %q",
		e.Identifier, len(e.Labels), strings.Join(e.Labels, ", "), e.Rejected)
}

// InsufficientVariantsError reports a group that cannot be diffed.
type InsufficientVariantsError struct {
	Identifier string
	Count      int
}

func (e *InsufficientVariantsError) Error() string {
	return fmt.Sprintf("identifier %q has %d variant(s); need at least 2 to diff", e.Identifier, e.Count)
}

// DecodeError reports a corrupt store blob or content that is not valid
// UTF-8. Source names the store location or the input.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IOError reports a failed read, write or delete of the store blob.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
