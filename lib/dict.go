// Copyright (c) 2017 Darren Whitlen <darren@kiwiirc.com>
// released under the MIT license

package ircname

import (
	"errors"
	"sort"
)

// ErrZeroKey is returned when a Dict is built with the zero identifier as a key.
var ErrZeroKey = errors.New("Dict keys must be valid names")

type dictEntry[K Kind, V any] struct {
	key   Identifier[K]
	value V
}

// Dict is a read-only map keyed by identifiers, matching keys the same way
// Identifier.Equal does. A nil *Dict is empty.
type Dict[K Kind, V any] struct {
	entries map[string]dictEntry[K, V]
}

// NewDict copies entries into a Dict. Keys that fold to the same name return
// a *DuplicateNameError.
func NewDict[K Kind, V any](entries map[Identifier[K]]V) (*Dict[K, V], error) {
	dict := &Dict[K, V]{
		entries: make(map[string]dictEntry[K, V], len(entries)),
	}

	for key, value := range entries {
		if key.IsZero() {
			return nil, ErrZeroKey
		}

		folded := key.Fold()
		existing, exists := dict.entries[folded]
		if exists {
			first, second := existing.key.String(), key.String()
			if second < first {
				first, second = second, first
			}
			return nil, &DuplicateNameError{First: first, Second: second}
		}

		dict.entries[folded] = dictEntry[K, V]{key: key, value: value}
	}

	return dict, nil
}

// Get returns the value stored under key.
func (d *Dict[K, V]) Get(key Identifier[K]) (V, bool) {
	if d == nil {
		var zero V
		return zero, false
	}
	entry, exists := d.entries[key.Fold()]
	return entry.value, exists
}

// Has returns true if key is in the dict.
func (d *Dict[K, V]) Has(key Identifier[K]) bool {
	_, exists := d.Get(key)
	return exists
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Keys returns the keys as originally given, ordered by Compare.
func (d *Dict[K, V]) Keys() []Identifier[K] {
	if d == nil {
		return nil
	}

	keys := make([]Identifier[K], 0, len(d.entries))
	for _, entry := range d.entries {
		keys = append(keys, entry.key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Compare(keys[j]) < 0
	})
	return keys
}

// Range calls fn for each entry in key order until fn returns false.
func (d *Dict[K, V]) Range(fn func(key Identifier[K], value V) bool) {
	for _, key := range d.Keys() {
		if !fn(key, d.entries[key.Fold()].value) {
			return
		}
	}
}
