// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output provides sorting and emission utilities used by commands to
// present record sets as text tables, JSON or YAML.
package output
