// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/vardiff/internal/variant"
)

func testRecords() []variant.ContentVariant {
	return []variant.ContentVariant{
		{Identifier: "zebra", Label: "a", Body: "1\n2\n3\n"},
		{Identifier: "Alpha", Label: "b", Body: strings.Repeat("x", 2048)},
		{Identifier: "beta", Label: "c", Body: ""},
	}
}

func TestSortDataset(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{"empty spec keeps order", "", []string{"zebra", "Alpha", "beta"}},
		{"ascending by identifier", "identifier", []string{"Alpha", "beta", "zebra"}},
		{"descending by identifier", "-identifier", []string{"zebra", "beta", "Alpha"}},
		{"case sensitive", "!identifier", []string{"Alpha", "beta", "zebra"}},
		{"numeric size", "size", []string{"beta", "zebra", "Alpha"}},
		{"descending lines", "-lines", []string{"zebra", "Alpha", "beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Dataset(testRecords())
			SortDataset(rows, tt.spec)
			for i, want := range tt.wantOrder {
				assert.Equal(t, want, rows[i]["identifier"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	assert.Equal(t, "hello", InterfaceToString("hello"))
	assert.Equal(t, "42", InterfaceToString(42))
	assert.Equal(t, "42", InterfaceToString(42.0))
	assert.Equal(t, "true", InterfaceToString(true))
	assert.Equal(t, "-", InterfaceToString(nil, "-"))
	assert.Equal(t, "", InterfaceToString(0))
}

func TestEmit_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, testRecords(), Options{Format: "json"}))

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "zebra", rows[0]["identifier"])
	assert.Equal(t, 3.0, rows[0]["lines"])
	assert.Equal(t, 2048.0, rows[1]["size"])
}

func TestEmit_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, testRecords(), Options{Format: "yaml", Sort: "identifier"}))

	var rows []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "Alpha", rows[0]["identifier"])
}

func TestEmit_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, testRecords(), Options{Format: "text", Titles: true}))

	out := buf.String()
	assert.Contains(t, out, "identifier")
	assert.Contains(t, out, "zebra")
	assert.Contains(t, out, "2.0 kB")
}

func TestEmit_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, nil, Options{Format: "text"}))
	assert.Empty(t, buf.String())
}

func TestEmit_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, Emit(&buf, testRecords(), Options{Format: "xml"}), "unknown output format")
}
