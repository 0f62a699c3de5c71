// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package record defines the schemaless row type held by the store.
package record

// Record is one logical row: field name to value. Records in the same
// collection are free to carry different fields.
type Record map[string]any

// missing is unexported so no caller can construct a value equal to Missing
// by accident.
type missing struct{}

func (missing) String() string { return "<missing>" }

// Missing is returned by Field for absent fields. It never compares equal to
// a stored value, nil included.
var Missing any = missing{}

// Field returns the value of name, or Missing when r has no such field.
func (r Record) Field(name string) any {
	if v, ok := r[name]; ok {
		return v
	}
	return Missing
}

// Has reports whether name is present, even if its value is nil.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Fields returns the field names of r in no particular order.
func (r Record) Fields() []string {
	out := make([]string, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	return out
}

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// From converts the common record-shaped values into a collection. A single
// mapping becomes a one-element collection. The second return is false when v
// is not record-shaped.
func From(v any) ([]Record, bool) {
	switch val := v.(type) {
	case []Record:
		return val, true
	case Record:
		return []Record{val}, true
	case map[string]any:
		return []Record{val}, true
	case []map[string]any:
		out := make([]Record, 0, len(val))
		for _, m := range val {
			out = append(out, m)
		}
		return out, true
	case []any:
		out := make([]Record, 0, len(val))
		for _, item := range val {
			switch m := item.(type) {
			case Record:
				out = append(out, m)
			case map[string]any:
				out = append(out, m)
			default:
				return nil, false
			}
		}
		return out, true
	default:
		return nil, false
	}
}
