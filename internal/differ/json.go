// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/vardiff/internal/log"
)

// ErrNotJSONObject is returned by JSONDiff when a body is not a JSON object.
var ErrNotJSONObject = errors.New("body is not a JSON object")

// JSONDiff writes a structural diff of two JSON object documents to w and
// reports whether they differ. Top-level keys listed in ignore are dropped
// from both sides first.
func JSONDiff(w io.Writer, left, right []byte, ignore []string, color bool) (bool, error) {
	leftDoc, err := decodeObject(left, ignore)
	if err != nil {
		return false, fmt.Errorf("left: %w", err)
	}
	rightDoc, err := decodeObject(right, ignore)
	if err != nil {
		return false, fmt.Errorf("right: %w", err)
	}

	delta := gojsondiff.New().CompareObjects(leftDoc, rightDoc)
	if !delta.Modified() {
		return false, nil
	}
	log.Debugf("json delta: %d top-level deltas", len(delta.Deltas()))

	f := formatter.NewAsciiFormatter(leftDoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       color,
	})
	out, err := f.Format(delta)
	if err != nil {
		return true, fmt.Errorf("failed to format JSON diff: %w", err)
	}

	_, err = fmt.Fprintln(w, out)
	return true, err
}

// IsJSONObject reports whether body parses as a JSON object.
func IsJSONObject(body []byte) bool {
	return gjson.ValidBytes(body) && gjson.ParseBytes(body).IsObject()
}

func decodeObject(body []byte, ignore []string) (map[string]interface{}, error) {
	if !IsJSONObject(body) {
		return nil, ErrNotJSONObject
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal: %w", err)
	}
	for _, key := range ignore {
		if key != "" {
			delete(doc, key)
		}
	}
	return doc, nil
}
