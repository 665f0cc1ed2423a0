// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "github.com/tfctl/vardiff/internal/log"

// Compute returns the edit script from oldText to newText.
func Compute(oldText, newText string) Script {
	a, aEOL := SplitLines(oldText)
	b, bEOL := SplitLines(newText)
	return Script{
		Ops:    Lines(a, b),
		OldEOL: aEOL,
		NewEOL: bEOL,
	}
}

// Lines aligns a and b on a longest common subsequence of whole lines and
// returns the coalesced runs. Equal heads are always matched so Same runs land
// as early as possible; otherwise a removal is preferred over an insertion
// when both keep the subsequence length. The result is deterministic.
func Lines(a, b []string) []Op {
	var ops []Op

	// A shared prefix is matched by the walk below anyway. Peeling it off keeps
	// the table small for the common mostly-equal case.
	p := 0
	for p < len(a) && p < len(b) && a[p] == b[p] {
		ops = appendLine(ops, Same, a[p])
		p++
	}
	a, b = a[p:], b[p:]

	k := suffixLen(a, b)
	tail := b[len(b)-k:]
	a, b = a[:len(a)-k], b[:len(b)-k]

	n, m := len(a), len(b)
	width := m + 1
	log.Tracef("lcs: prefix=%d suffix=%d table=%dx%d", p, k, n+1, width)

	// lcs[i*width+j] is the LCS length of a[i:] and b[j:].
	lcs := make([]int32, (n+1)*width)
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				lcs[i*width+j] = lcs[(i+1)*width+j+1] + 1
			case lcs[(i+1)*width+j] >= lcs[i*width+j+1]:
				lcs[i*width+j] = lcs[(i+1)*width+j]
			default:
				lcs[i*width+j] = lcs[i*width+j+1]
			}
		}
	}

	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			ops = appendLine(ops, Same, a[i])
			i++
			j++
		case lcs[(i+1)*width+j] >= lcs[i*width+j+1]:
			ops = appendLine(ops, Removed, a[i])
			i++
		default:
			ops = appendLine(ops, Inserted, b[j])
			j++
		}
	}
	for ; i < n; i++ {
		ops = appendLine(ops, Removed, a[i])
	}
	for ; j < m; j++ {
		ops = appendLine(ops, Inserted, b[j])
	}
	for _, l := range tail {
		ops = appendLine(ops, Same, l)
	}

	return ops
}

// suffixLen returns how many trailing lines of a and b can be matched up
// front without changing the alignment Lines would produce on the full input.
// That holds when no line of the suffix occurs anywhere before it on either
// side, so the longest such common suffix is returned.
func suffixLen(a, b []string) int {
	k0 := 0
	for k0 < len(a) && k0 < len(b) && a[len(a)-1-k0] == b[len(b)-1-k0] {
		k0++
	}
	if k0 == 0 {
		return 0
	}

	countA := make(map[string]int, len(a))
	for _, l := range a {
		countA[l]++
	}
	countB := make(map[string]int, len(b))
	for _, l := range b {
		countB[l]++
	}

	// A suffix value is clean once all of its occurrences on both sides lie
	// inside the suffix.
	inSuffix := map[string]int{}
	dirty, best := 0, 0
	for k := 1; k <= k0; k++ {
		l := a[len(a)-k]
		before := inSuffix[l]
		wasDirty := before > 0 && (countA[l] != before || countB[l] != before)
		inSuffix[l] = before + 1
		isDirty := countA[l] != before+1 || countB[l] != before+1
		switch {
		case isDirty && !wasDirty:
			dirty++
		case !isDirty && wasDirty:
			dirty--
		}
		if dirty == 0 {
			best = k
		}
	}
	return best
}
