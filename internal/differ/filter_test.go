// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	s := Compute("keep\nold TODO\nold other\nend", "keep\nnew TODO\nnew other\nend")

	tests := []struct {
		name    string
		pattern string
		want    []Op
	}{
		{
			name:    "empty pattern is a no-op",
			pattern: "",
			want:    s.Ops,
		},
		{
			name:    "only matching lines stay flagged",
			pattern: "TODO",
			want: []Op{
				{Kind: Same, Lines: []string{"keep"}},
				{Kind: Removed, Lines: []string{"old TODO"}},
				{Kind: Inserted, Lines: []string{"new TODO"}},
				{Kind: Same, Lines: []string{"new other", "end"}},
			},
		},
		{
			name:    "no match folds everything into same",
			pattern: "nothing",
			want: []Op{
				{Kind: Same, Lines: []string{"keep", "new TODO", "new other", "end"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filter(s, tt.pattern)
			assert.Equal(t, tt.want, f.Ops)
			// The new side always survives filtering.
			assert.Equal(t, s.New(), f.New())
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	s := Compute("a\nb", "a\nc")
	before := Compute("a\nb", "a\nc")
	_ = Filter(s, "c")
	assert.Equal(t, before, s)
}
