// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package linkedslab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator_FollowsSegmentOrder(t *testing.T) {
	t.Parallel()

	m := New[int, int](WithCapacity(3))
	for _, k := range []int{9, 4, 7, 1, 12, 3, 15} {
		m.Insert(k, -k)
	}

	var want []int
	for s := &m.head; s != nil; s = s.tail {
		want = append(want, segmentKeys(s)...)
	}

	keys, values := collect(m)
	require.Equal(t, want, keys)
	for i, k := range keys {
		require.Equal(t, -k, values[i])
	}
}

func TestIterator_Restartable(t *testing.T) {
	t.Parallel()

	m := New[string, int](WithCapacity(2))
	for i, k := range []string{"x", "y", "z", "w"} {
		m.Insert(k, i)
	}

	first := m.Iterator()
	k, _, ok := first.Next()
	require.True(t, ok)
	require.Equal(t, "w", k)

	second := m.Iterator()
	var keys []string
	for {
		k, _, ok := second.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	require.Len(t, keys, 4)

	k, _, ok = first.Next()
	require.True(t, ok)
	require.Equal(t, keys[1], k)

	_, _, ok = second.Next()
	require.False(t, ok)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	m := New[int, string](WithCapacity(2))
	for _, k := range []int{3, 1, 2, 5, 4} {
		m.Insert(k, string(rune('a'+k)))
	}

	iterated, _ := collect(m)
	var walked []int
	m.Walk(func(k int, v string) bool {
		require.Equal(t, string(rune('a'+k)), v)
		walked = append(walked, k)
		return false
	})
	require.Equal(t, iterated, walked)

	walked = walked[:0]
	m.Walk(func(k int, _ string) bool {
		walked = append(walked, k)
		return len(walked) == 3
	})
	require.Equal(t, iterated[:3], walked)
}
