// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes and renders line differences between two texts.
//
// Compute aligns the two line sequences on a longest common subsequence and
// returns a Script of coalesced Same, Inserted and Removed runs. Both the
// raw-file and the stored-variant paths use the same engine. Rendering, the
// pattern filter, the structural JSON mode and the interactive pair picker are
// layered on top of the Script and never change the alignment.
package differ
