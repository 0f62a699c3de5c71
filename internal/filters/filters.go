// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/datactx/internal/record"
)

// ErrInvalidCondition is wrapped by every condition validation failure so
// callers can tell a malformed query apart from an empty result.
var ErrInvalidCondition = errors.New("invalid condition")

// filterRegex splits a filter expression into key, operand and target. The
// operand is = for equality or @ for membership.
var filterRegex = regexp.MustCompile(`^([^=@]+)([=@])(.*)$`)

// Filter is a single (field, target) pair. A collection Target means
// membership, anything else means equality.
type Filter struct {
	Key    string
	Target any
}

// Filters is an ordered condition. A record matches when every Filter does.
type Filters []Filter

// Where builds a single-field condition. target may itself be a collection,
// in which case the field value must be one of its elements.
func Where(key string, target any) Filters {
	return Filters{{Key: key, Target: target}}
}

// And returns f extended by one more pair.
func (f Filters) And(key string, target any) Filters {
	out := make(Filters, len(f), len(f)+1)
	copy(out, f)
	return append(out, Filter{Key: key, Target: target})
}

// Zip pairs keys with targets positionally. targets must be a slice or array
// (not a string, []byte or map) of the same length as keys.
func Zip(keys []string, targets any) (Filters, error) {
	values, ok := elements(targets)
	if !ok {
		return nil, fmt.Errorf("%w: values must be a sequence when several keys are given, got %T",
			ErrInvalidCondition, targets)
	}
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: mismatched keys/values arity (%d keys, %d values)",
			ErrInvalidCondition, len(keys), len(values))
	}

	out := make(Filters, 0, len(keys))
	for i, k := range keys {
		out = append(out, Filter{Key: k, Target: values[i]})
	}
	return out, nil
}

// Match reports whether r satisfies the pair.
func (f Filter) Match(r record.Record) bool {
	value := r.Field(f.Key)

	if members, ok := elements(f.Target); ok {
		for _, m := range members {
			if reflect.DeepEqual(value, m) {
				return true
			}
		}
		return false
	}

	return reflect.DeepEqual(value, f.Target)
}

// Match reports whether r satisfies every pair. An empty condition matches
// everything.
func (f Filters) Match(r record.Record) bool {
	for _, filter := range f {
		if !filter.Match(r) {
			return false
		}
	}
	return true
}

// Keys returns the field names of the condition in order.
func (f Filters) Keys() []string {
	keys := make([]string, 0, len(f))
	for _, filter := range f {
		keys = append(keys, filter.Key)
	}
	return keys
}

// Find returns the earliest record in records that matches f.
func Find(records []record.Record, f Filters) (record.Record, bool) {
	for _, r := range records {
		if f.Match(r) {
			return r, true
		}
	}
	return nil, false
}

// FindOr is Find with a fallback value for the not-found case.
func FindOr(records []record.Record, f Filters, def record.Record) record.Record {
	if r, ok := Find(records, f); ok {
		return r
	}
	return def
}

// Select returns every record matching f, in input order. The result is
// never nil.
func Select(records []record.Record, f Filters) []record.Record {
	out := make([]record.Record, 0)
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// BuildFilters parses a filter specification such as "team=core,level@1|3"
// into Filters. Targets that are valid JSON scalars are decoded (1 becomes
// float64, true a bool, null nil); anything else stays a string. A malformed
// term fails the whole spec.
func BuildFilters(spec string) (Filters, error) {
	// Don't prealloc because we don't know what len will be.
	//nolint:prealloc
	var filters Filters

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters, nil
	}

	// Default delimiter is ",", allow an override.
	delim := ","
	if d, ok := os.LookupEnv("DATACTX_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCondition, filterSpec)
		}

		key := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("%w: empty key in %q", ErrInvalidCondition, filterSpec)
		}

		var target any
		switch parts[2] {
		case "@":
			members := strings.Split(parts[3], "|")
			decoded := make([]any, 0, len(members))
			for _, m := range members {
				decoded = append(decoded, decodeTarget(m))
			}
			target = decoded
		default:
			target = decodeTarget(parts[3])
		}

		log.Debugf("filter: key=%s operand=%s target=%v", key, parts[2], target)
		filters = append(filters, Filter{Key: key, Target: target})
	}

	return filters, nil
}

// decodeTarget turns JSON scalars into their Go values so CLI targets compare
// equal to values decoded from JSON datasets. Surrounding blanks are dropped.
func decodeTarget(s string) any {
	s = strings.TrimSpace(s)
	if gjson.Valid(s) {
		res := gjson.Parse(s)
		if res.Type != gjson.JSON {
			return record.FromJSON(res)
		}
	}
	return s
}

// elements returns the members of v when v is a membership collection: a
// slice or array that is not []byte. Strings and maps never qualify.
func elements(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if members, ok := v.([]any); ok {
		return members, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}
