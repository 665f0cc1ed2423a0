// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package storage persists the single blob that backs a variant store. A
// Backend is chosen per scope: a file under the vardiff data directory by
// default, an S3 object when configured, or memory in tests. The package also
// owns the on-disk layout (store and scratch directories) and scratch cleanup.
package storage
