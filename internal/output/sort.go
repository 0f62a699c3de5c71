// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"sort"
	"strings"

	"github.com/staranto/datactx/internal/record"
)

// SortDataset sorts records in place by a comma-separated list of fields. A
// leading '-' sorts that field descending. Numbers compare numerically,
// everything else by its string form; records lacking a field sort last.
// The sort is stable, so an empty spec leaves the order alone.
func SortDataset(records []record.Record, spec string) {
	if spec == "" {
		return
	}

	type key struct {
		field string
		desc  bool
	}

	var keys []key
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k := key{field: part}
		if strings.HasPrefix(part, "-") {
			k.field, k.desc = part[1:], true
		}
		keys = append(keys, k)
	}

	sort.SliceStable(records, func(i, j int) bool {
		for _, k := range keys {
			a, b := records[i].Field(k.field), records[j].Field(k.field)
			if am, bm := record.IsMissing(a), record.IsMissing(b); am || bm {
				if am == bm {
					continue
				}
				return bm
			}

			c := compare(a, b)
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compare orders two present values.
func compare(a, b any) int {
	if af, ok := toFloat64(a); ok {
		if bf, ok := toFloat64(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(InterfaceToString(a), InterfaceToString(b))
}

// toFloat64 attempts to normalize various numeric types to float64.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
