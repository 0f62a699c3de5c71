// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package store holds record collections in memory under string keys so data
// fetched once from an external source can be reused for the life of the
// process, and answers equality/membership queries against them.
//
// There is no global instance. Build one Store at startup with New and pass
// it to whatever needs it.
package store
