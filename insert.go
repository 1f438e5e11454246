// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package linkedslab

import (
	"fmt"
)

type placement uint8

const (
	unplaced placement = iota
	placed
	replaced
)

// Insert is used to add or update a given key. The return provides
// the previous value and a bool indicating if any was set.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	old, res := m.recursiveInsert(&m.head, Record[K, V]{Key: key, Value: value}, false, 0)
	switch res {
	case replaced:
		return old, true
	case placed:
		m.size++
		return old, false
	}
	panic(fmt.Errorf("%w: key %v", ErrPlacement, key))
}

// recursiveInsert walks the chain from s looking for key. The earliest
// segment whose insertion point lies inside its capacity becomes the
// fallback, but deeper segments are tried first so an existing key is
// always found. claimed is set once a shallower frame holds a fallback.
func (m *Map[K, V]) recursiveInsert(s *segment[K, V], rec Record[K, V], claimed bool, depth int) (V, placement) {
	var zero V

	idx, found := s.search(rec.Key, m.cmp)
	if found {
		old := s.records[idx].Value
		s.records[idx].Value = rec.Value
		return old, replaced
	}

	fallback := !claimed && idx < cap(s.records)
	if s.tail != nil {
		old, res := m.recursiveInsert(s.tail, rec, claimed || fallback, depth+1)
		if res != unplaced {
			return old, res
		}
	}

	switch {
	case fallback:
		if displaced, ok := s.insertAt(idx, rec); ok {
			m.cascade(s, displaced, depth)
		}
		return zero, placed
	case !claimed && s.tail == nil:
		m.appendTail(s, rec, depth)
		return zero, placed
	}
	return zero, unplaced
}

// cascade places a record pushed out of a full segment into the chain
// behind it. The key lived only in s, so it cannot match anything deeper.
func (m *Map[K, V]) cascade(s *segment[K, V], rec Record[K, V], depth int) {
	m.logger.Debug("displacing record into tail chain", "depth", depth)
	if s.tail == nil {
		m.appendTail(s, rec, depth)
		return
	}
	if _, res := m.recursiveInsert(s.tail, rec, false, depth+1); res != placed {
		panic(fmt.Errorf("%w: displaced key %v", ErrPlacement, rec.Key))
	}
}

func (m *Map[K, V]) appendTail(s *segment[K, V], rec Record[K, V], depth int) {
	s.tail = newTail(m.capacity, rec)
	m.depth++
	m.logger.Debug("allocated tail segment", "depth", depth+1, "capacity", m.capacity)
}
