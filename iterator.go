// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package linkedslab

// Iterator walks the chain from head to tail, yielding each segment's
// records in ascending key order. The concatenation is not globally
// sorted. An Iterator is invalidated by any Insert into its map.
type Iterator[K, V any] struct {
	seg *segment[K, V]
	pos int
}

// Iterator returns a fresh iterator positioned before the first record.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{seg: &m.head}
}

// Next returns the next key and value, or false once the chain is
// exhausted.
func (i *Iterator[K, V]) Next() (K, V, bool) {
	for i.seg != nil {
		if i.pos < len(i.seg.records) {
			r := i.seg.records[i.pos]
			i.pos++
			return r.Key, r.Value, true
		}
		i.seg = i.seg.tail
		i.pos = 0
	}
	var (
		k K
		v V
	)
	return k, v, false
}
