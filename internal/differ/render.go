// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
)

// Styles holds the lipgloss styles used when rendering with color.
type Styles struct {
	Header   lipgloss.Style
	Inserted lipgloss.Style
	Removed  lipgloss.Style
	Note     lipgloss.Style
}

// NewStyles builds Styles from the given colors. A nil color leaves that
// element unstyled apart from the header's bold.
func NewStyles(header, inserted, removed, note color.Color) Styles {
	base := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	st := Styles{
		Header:   base.Bold(true),
		Inserted: base,
		Removed:  base,
		Note:     base,
	}
	if header != nil {
		st.Header = st.Header.Foreground(header)
	}
	if inserted != nil {
		st.Inserted = st.Inserted.Foreground(inserted)
	}
	if removed != nil {
		st.Removed = st.Removed.Foreground(removed)
	}
	if note != nil {
		st.Note = st.Note.Foreground(note)
	}
	return st
}

// DefaultStyles mirrors the classic red/green/yellow diff palette.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.Color("4"), lipgloss.Color("2"), lipgloss.Color("1"), lipgloss.Color("3"))
}

// Renderer writes Scripts as text. Same lines are written as-is, Inserted
// lines prefixed with "+ " and Removed lines with "- ".
type Renderer struct {
	w      io.Writer
	color  bool
	styles Styles
}

// RenderOption customizes a Renderer.
type RenderOption func(*Renderer)

// WithColor turns ANSI styling on or off.
func WithColor(on bool) RenderOption {
	return func(r *Renderer) { r.color = on }
}

// WithStyles replaces the default Styles.
func WithStyles(st Styles) RenderOption {
	return func(r *Renderer) { r.styles = st }
}

// NewRenderer returns a Renderer writing to w. Color is off by default.
func NewRenderer(w io.Writer, opts ...RenderOption) *Renderer {
	r := &Renderer{w: w, styles: DefaultStyles()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Header writes the pair banner "identifier: left -> right". An empty
// identifier (raw-file mode) prints just the two labels.
func (r *Renderer) Header(identifier, left, right string) error {
	title := fmt.Sprintf("%s -> %s", left, right)
	if identifier != "" {
		title = fmt.Sprintf("%s: %s", identifier, title)
	}
	return r.line(r.styles.Header, "=== "+title)
}

// Render writes every run of s, followed by a note when only one side ends
// with a newline.
func (r *Renderer) Render(s Script) error {
	for _, op := range s.Ops {
		for _, l := range op.Lines {
			var err error
			switch op.Kind {
			case Inserted:
				err = r.line(r.styles.Inserted, "+ "+l)
			case Removed:
				err = r.line(r.styles.Removed, "- "+l)
			default:
				_, err = fmt.Fprintln(r.w, l)
			}
			if err != nil {
				return err
			}
		}
	}

	if s.OldEOL != s.NewEOL && len(s.OldLines()) > 0 && len(s.NewLines()) > 0 {
		return r.Note(`\ newline at end of file differs`)
	}
	return nil
}

// Stat writes a one-line summary of s.
func (r *Renderer) Stat(s Script) error {
	st := s.Stats()
	return r.Note(fmt.Sprintf("%d unchanged, %d inserted, %d removed", st.Same, st.Inserted, st.Removed))
}

// Note writes an informational line.
func (r *Renderer) Note(msg string) error {
	return r.line(r.styles.Note, msg)
}

func (r *Renderer) line(style lipgloss.Style, s string) error {
	if r.color {
		s = style.Render(s)
	}
	_, err := fmt.Fprintln(r.w, s)
	return err
}
