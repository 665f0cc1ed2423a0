// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsJSONObject(t *testing.T) {
	assert.True(t, IsJSONObject([]byte(`{"a":1}`)))
	assert.False(t, IsJSONObject([]byte(`[1,2]`)))
	assert.False(t, IsJSONObject([]byte(`{"a":`)))
	assert.False(t, IsJSONObject([]byte(`plain text`)))
}

func TestJSONDiff(t *testing.T) {
	left := []byte(`{"name":"web","serial":1,"size":2}`)

	t.Run("modified", func(t *testing.T) {
		var buf bytes.Buffer
		changed, err := JSONDiff(&buf, left, []byte(`{"name":"web","serial":2,"size":3}`), nil, false)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Contains(t, buf.String(), `"size"`)
	})

	t.Run("identical", func(t *testing.T) {
		var buf bytes.Buffer
		changed, err := JSONDiff(&buf, left, left, nil, false)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, buf.String())
	})

	t.Run("ignored keys", func(t *testing.T) {
		var buf bytes.Buffer
		changed, err := JSONDiff(&buf, left, []byte(`{"name":"web","serial":9,"size":2}`), []string{"serial"}, false)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("not an object", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := JSONDiff(&buf, left, []byte(`[]`), nil, false)
		assert.ErrorIs(t, err, ErrNotJSONObject)
	})
}
