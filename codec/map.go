// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "fmt"

// Entry is one key/value pair of a map codec. The entry order of the
// slice is the canonical wire order: encounter order, never key-sorted.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewMap returns a codec for an ordered entry list, derived as a
// transform over vector<tuple<K, V>>. Go's built-in map has no stable
// iteration order, so the ordered slice is the application
// representation; use CollectMap when order stops mattering.
func NewMap[K comparable, V any](key *Type[K], value *Type[V]) *Type[[]Entry[K, V]] {
	name := fmt.Sprintf("map<%s, %s>", key.Name(), value.Name())
	inner := NewVector(NewTuple2(key, value))
	return Transform(name, inner,
		func(entries []Entry[K, V]) ([]Pair[K, V], error) {
			pairs := make([]Pair[K, V], len(entries))
			for i, e := range entries {
				pairs[i] = Pair[K, V]{First: e.Key, Second: e.Value}
			}
			return pairs, nil
		},
		func(pairs []Pair[K, V]) ([]Entry[K, V], error) {
			entries := make([]Entry[K, V], len(pairs))
			for i, p := range pairs {
				entries[i] = Entry[K, V]{Key: p.First, Value: p.Second}
			}
			return entries, nil
		},
		nil,
	)
}

// CollectMap gathers decoded entries into a Go map. Later duplicates
// win, mirroring repeated assignment.
func CollectMap[K comparable, V any](entries []Entry[K, V]) map[K]V {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}
