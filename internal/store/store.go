// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"sort"
	"sync"

	"github.com/apex/log"

	"github.com/staranto/datactx/internal/filters"
	"github.com/staranto/datactx/internal/record"
)

// Store maps keys to arbitrary values, usually record collections. Each call
// is atomic on its own; sequences of calls are not.
type Store struct {
	mu   sync.RWMutex
	data map[string]any
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[string]any)}
}

// Set stores value under key, replacing whatever was there.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Get returns the value stored under key. When key is absent it returns the
// first defaultValue, or nil if none was given.
func (s *Store) Get(key string, defaultValue ...any) any {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// Lookup returns the value under key and whether it was present.
func (s *Store) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Reset removes every entry. Calling it on an empty Store is a no-op.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.Debugf("store reset: dropping %d entries", len(s.data))
	clear(s.data)
}

// Len returns the number of keys held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records returns the value under key as a record collection. It is false when
// the key is absent or the value is not record-shaped.
func (s *Store) Records(key string) ([]record.Record, bool) {
	v, ok := s.Lookup(key)
	if !ok {
		return nil, false
	}
	return record.From(v)
}

// Remember returns the value cached under key, calling fetch to populate it on
// the first request. Nothing is stored when fetch fails.
//
// The lock is not held while fetch runs, so two concurrent misses may both
// fetch; the later Set wins.
func (s *Store) Remember(key string, fetch func() (any, error)) (any, error) {
	if v, ok := s.Lookup(key); ok {
		log.Debugf("store hit: %s", key)
		return v, nil
	}

	log.Debugf("store miss: %s", key)
	v, err := fetch()
	if err != nil {
		return nil, err
	}
	s.Set(key, v)
	return v, nil
}

// Find returns the first record in records matching f, or the first
// defaultValue (nil if none) when nothing matches.
func (s *Store) Find(records []record.Record, f filters.Filters, defaultValue ...record.Record) record.Record {
	var def record.Record
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}
	return filters.FindOr(records, f, def)
}

// Filter returns every record in records matching f, in order.
func (s *Store) Filter(records []record.Record, f filters.Filters) []record.Record {
	return filters.Select(records, f)
}

// FindIn is Find over the collection stored under key. A missing or
// non-record key is treated as an empty collection.
func (s *Store) FindIn(key string, f filters.Filters, defaultValue ...record.Record) record.Record {
	records, _ := s.Records(key)
	return s.Find(records, f, defaultValue...)
}

// FilterIn is Filter over the collection stored under key.
func (s *Store) FilterIn(key string, f filters.Filters) []record.Record {
	records, _ := s.Records(key)
	return filters.Select(records, f)
}
