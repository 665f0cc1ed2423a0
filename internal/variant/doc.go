// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package variant stores named variants of text under shared identifiers and
// groups them for comparison. An identifier holds at most MaxVariants labels;
// re-registering a label replaces its body in place. Every operation loads the
// whole store from its storage.Backend and saves it back in full, so a failed
// operation leaves the persisted store as it was.
package variant
