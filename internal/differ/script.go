// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strings"
)

// Kind classifies a run of lines in a Script.
type Kind int

const (
	Same Kind = iota
	Inserted
	Removed
)

func (k Kind) String() string {
	switch k {
	case Same:
		return "same"
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	}
	return "unknown"
}

// Op is one run of lines sharing a Kind.
type Op struct {
	Kind  Kind
	Lines []string
}

// Script is the edit script turning the old text into the new one. Ops never
// holds two consecutive runs of the same Kind. OldEOL and NewEOL record whether
// each text ended with a line terminator.
type Script struct {
	Ops    []Op
	OldEOL bool
	NewEOL bool
}

// Stats counts lines per Kind.
type Stats struct {
	Same     int
	Inserted int
	Removed  int
}

// SplitLines splits text on "\n". The terminator is not kept, the empty string
// has zero lines and a final "\n" ends the last line rather than starting an
// empty one; eol reports whether it was present.
func SplitLines(text string) (lines []string, eol bool) {
	if text == "" {
		return nil, false
	}
	if strings.HasSuffix(text, "\n") {
		eol = true
		text = text[:len(text)-1]
	}
	return strings.Split(text, "\n"), eol
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string, eol bool) string {
	if len(lines) == 0 {
		return ""
	}
	s := strings.Join(lines, "\n")
	if eol {
		s += "\n"
	}
	return s
}

// OldLines returns the Same and Removed lines in order.
func (s Script) OldLines() []string {
	return s.side(Removed)
}

// NewLines returns the Same and Inserted lines in order.
func (s Script) NewLines() []string {
	return s.side(Inserted)
}

// Old reconstructs the old text.
func (s Script) Old() string {
	return JoinLines(s.OldLines(), s.OldEOL)
}

// New reconstructs the new text.
func (s Script) New() string {
	return JoinLines(s.NewLines(), s.NewEOL)
}

func (s Script) side(changed Kind) []string {
	var lines []string
	for _, op := range s.Ops {
		if op.Kind == Same || op.Kind == changed {
			lines = append(lines, op.Lines...)
		}
	}
	return lines
}

// Stats returns per-Kind line counts.
func (s Script) Stats() Stats {
	var st Stats
	for _, op := range s.Ops {
		switch op.Kind {
		case Same:
			st.Same += len(op.Lines)
		case Inserted:
			st.Inserted += len(op.Lines)
		case Removed:
			st.Removed += len(op.Lines)
		}
	}
	return st
}

// Identical reports whether the script carries no line changes and both texts
// agree on the trailing newline.
func (s Script) Identical() bool {
	st := s.Stats()
	return st.Inserted == 0 && st.Removed == 0 && s.OldEOL == s.NewEOL
}

// appendLine adds line to ops, extending the last run when it has the same
// Kind.
func appendLine(ops []Op, kind Kind, line string) []Op {
	if n := len(ops); n > 0 && ops[n-1].Kind == kind {
		ops[n-1].Lines = append(ops[n-1].Lines, line)
		return ops
	}
	return append(ops, Op{Kind: kind, Lines: []string{line}})
}
