// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package linkedslab

import (
	"golang.org/x/exp/slices"
)

// Record is a single key/value pair stored in a segment.
type Record[K, V any] struct {
	Key   K
	Value V
}

// segment is a fixed-capacity run of records sorted by key. The backing
// array is allocated once with cap == capacity; len(records) is the live
// count and nothing past it is ever read.
type segment[K, V any] struct {
	records []Record[K, V]
	tail    *segment[K, V]
}

func makeSegment[K, V any](capacity int) segment[K, V] {
	return segment[K, V]{records: make([]Record[K, V], 0, capacity)}
}

func newTail[K, V any](capacity int, rec Record[K, V]) *segment[K, V] {
	s := makeSegment[K, V](capacity)
	s.records = append(s.records, rec)
	return &s
}

func (s *segment[K, V]) full() bool {
	return len(s.records) == cap(s.records)
}

// search binary searches the live records. When the key is absent the
// returned index is its sorted insertion point, 0 <= idx <= len.
func (s *segment[K, V]) search(key K, cmp func(a, b K) int) (int, bool) {
	return slices.BinarySearchFunc(s.records, key, func(r Record[K, V], k K) int {
		return cmp(r.Key, k)
	})
}

// insertAt opens a gap at idx and writes rec there. If the segment was
// already full, the last live record is shifted out of the window and
// returned so the caller can place it elsewhere.
func (s *segment[K, V]) insertAt(idx int, rec Record[K, V]) (Record[K, V], bool) {
	n := len(s.records)
	if n < cap(s.records) {
		s.records = s.records[:n+1]
		copy(s.records[idx+1:], s.records[idx:n])
		s.records[idx] = rec
		return Record[K, V]{}, false
	}

	displaced := s.records[n-1]
	copy(s.records[idx+1:], s.records[idx:n-1])
	s.records[idx] = rec
	return displaced, true
}

// clone copies the live records of s and every segment behind it. Each
// copy gets its own backing array of the same capacity.
func (s *segment[K, V]) clone() segment[K, V] {
	head := s.cloneLocal()
	dst := &head
	for src := s.tail; src != nil; src = src.tail {
		c := src.cloneLocal()
		dst.tail = &c
		dst = dst.tail
	}
	return head
}

func (s *segment[K, V]) cloneLocal() segment[K, V] {
	records := make([]Record[K, V], len(s.records), cap(s.records))
	copy(records, s.records)
	return segment[K, V]{records: records}
}
