// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package linkedslab

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/constraints"
)

// Map is an ordered key/value container made of fixed-capacity sorted
// segments chained together. The map itself holds the head segment;
// further segments are allocated only when no existing segment can take
// a new key.
//
// Records are sorted within a segment but not across the chain, so
// iteration is not globally ordered. A Map is not safe for concurrent use.
type Map[K, V any] struct {
	head     segment[K, V]
	cmp      func(a, b K) int
	capacity int
	size     int
	depth    int
	logger   *slog.Logger
}

// WalkFn is used when walking the map. Takes a key and value, returning
// if iteration should be terminated.
type WalkFn[K, V any] func(k K, v V) bool

// New returns an empty map for naturally ordered keys. Floating point
// keys must not be NaN.
func New[K constraints.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewFunc[K, V](defaultCompare[K], opts...)
}

// NewFunc returns an empty map ordered by cmp, which must return a
// negative number when a < b, zero when they are equal and a positive
// number otherwise. It panics if the configured capacity is below one.
func NewFunc[K, V any](cmp func(a, b K) int, opts ...Option) *Map[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 1 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidCapacity, o.capacity))
	}
	return &Map[K, V]{
		head:     makeSegment[K, V](o.capacity),
		cmp:      cmp,
		capacity: o.capacity,
		depth:    1,
		logger:   o.logger,
	}
}

func defaultCompare[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Len is used to return the number of elements in the map
func (m *Map[K, V]) Len() int {
	return m.size
}

// Capacity returns the number of records each segment can hold.
func (m *Map[K, V]) Capacity() int {
	return m.capacity
}

// Depth returns the number of segments in the chain, including the head.
func (m *Map[K, V]) Depth() int {
	return m.depth
}

// Get is used to look up a specific key, returning
// the value and if it was found
func (m *Map[K, V]) Get(key K) (V, bool) {
	for s := &m.head; s != nil; s = s.tail {
		if idx, found := s.search(key, m.cmp); found {
			return s.records[idx].Value, true
		}
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) ContainsKey(key K) bool {
	for s := &m.head; s != nil; s = s.tail {
		if _, found := s.search(key, m.cmp); found {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the map. Values are copied by assignment,
// so pointer values are shared but the chain and its records are not.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		head:     m.head.clone(),
		cmp:      m.cmp,
		capacity: m.capacity,
		size:     m.size,
		depth:    m.depth,
		logger:   m.logger,
	}
}

// Walk is used to walk the map in iteration order
func (m *Map[K, V]) Walk(fn WalkFn[K, V]) {
	for s := &m.head; s != nil; s = s.tail {
		for _, r := range s.records {
			if fn(r.Key, r.Value) {
				return
			}
		}
	}
}
