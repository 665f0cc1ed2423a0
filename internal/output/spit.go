// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/vardiff/internal/config"
	"github.com/tfctl/vardiff/internal/variant"
)

// Formats lists the values accepted by Options.Format.
var Formats = []string{"text", "json", "yaml"}

// Columns is the column order of the variant table.
var Columns = []string{"identifier", "label", "lines", "size"}

// Options controls how Emit renders.
type Options struct {
	Format string
	Sort   string
	Titles bool
	Color  bool
}

// Dataset converts records to rows keyed by Columns. size is the body length
// in bytes.
func Dataset(records []variant.ContentVariant) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]interface{}{
			"identifier": r.Identifier,
			"label":      r.Label,
			"lines":      r.Lines(),
			"size":       len(r.Body),
		})
	}
	return rows
}

// Emit sorts and writes records to w in opts.Format.
func Emit(w io.Writer, records []variant.ContentVariant, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	rows := Dataset(records)
	SortDataset(rows, opts.Sort)

	switch opts.Format {
	case "json":
		b, err := json.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "text", "":
		TableWriter(rows, opts, w)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want one of %v)", opts.Format, Formats)
	}
}

// InterfaceToString converts supported primitive values to a string. A custom
// empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// TableWriter renders rows as an aligned table honoring color and titles. The
// size column is humanized.
func TableWriter(rows []map[string]interface{}, opts Options, w io.Writer) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	var cells [][]string
	for _, row := range rows {
		cell := make([]string, 0, len(Columns))
		for _, col := range Columns {
			if col == "size" {
				n, _ := row[col].(int)
				cell = append(cell, humanize.Bytes(uint64(n))) //nolint:gosec
				continue
			}
			cell = append(cell, InterfaceToString(row[col], "0"))
		}
		cells = append(cells, cell)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(1)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(Columns...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering, picking
// defaults by terminal background when the config has none.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
