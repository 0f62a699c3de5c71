// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// maxExactInt is the largest magnitude float64 holds without rounding.
const maxExactInt = 1 << 53

// FromJSON converts a parsed JSON value into Go values. It follows
// gjson.Result.Value, so numbers are float64, except that integers a float64
// cannot hold exactly are kept as int64. Loaders and filter targets both go
// through here so the same literal always yields the same value.
func FromJSON(res gjson.Result) any {
	switch {
	case res.IsObject():
		m := make(map[string]any)
		res.ForEach(func(k, v gjson.Result) bool {
			m[k.String()] = FromJSON(v)
			return true
		})
		return m
	case res.IsArray():
		arr := make([]any, 0)
		res.ForEach(func(_, v gjson.Result) bool {
			arr = append(arr, FromJSON(v))
			return true
		})
		return arr
	case res.Type == gjson.Number:
		if n, ok := wideInt(res.Raw); ok {
			return n
		}
		return res.Num
	default:
		return res.Value()
	}
}

// wideInt parses raw as an integer literal beyond float64's exact range.
func wideInt(raw string) (int64, bool) {
	if strings.ContainsAny(raw, ".eE") {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	if n > maxExactInt || n < -maxExactInt {
		return n, true
	}
	return 0, false
}
