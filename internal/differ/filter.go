// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "strings"

// Filter narrows the changes reported by s to lines containing pattern.
// Inserted lines without the pattern are shown as Same and Removed lines
// without it are hidden, so the visible text keeps the new side's line count
// plus the flagged removals. Alignment is not recomputed. The old side of the
// result no longer reconstructs the old text; the new side still does. An
// empty pattern returns s unchanged.
func Filter(s Script, pattern string) Script {
	if pattern == "" {
		return s
	}

	out := Script{OldEOL: s.OldEOL, NewEOL: s.NewEOL}
	for _, op := range s.Ops {
		for _, line := range op.Lines {
			switch {
			case op.Kind == Same:
				out.Ops = appendLine(out.Ops, Same, line)
			case strings.Contains(line, pattern):
				out.Ops = appendLine(out.Ops, op.Kind, line)
			case op.Kind == Inserted:
				out.Ops = appendLine(out.Ops, Same, line)
			}
		}
	}
	return out
}
