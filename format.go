// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package linkedslab

import (
	"fmt"
	"strings"
)

// String renders every record in iteration order as {k: v, ...}.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	m.Walk(func(k K, v V) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", k, v)
		return false
	})
	b.WriteByte('}')
	return b.String()
}

// Format implements fmt.Formatter. The %+v verb prints one group per
// segment so the chain layout is visible.
func (m *Map[K, V]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		var b strings.Builder
		b.WriteByte('[')
		for s := &m.head; s != nil; s = s.tail {
			if s != &m.head {
				b.WriteByte(' ')
			}
			b.WriteByte('{')
			for i, r := range s.records {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%v: %v", r.Key, r.Value)
			}
			b.WriteByte('}')
		}
		b.WriteByte(']')
		_, _ = f.Write([]byte(b.String()))
	case verb == 'v' || verb == 's':
		_, _ = f.Write([]byte(m.String()))
	default:
		fmt.Fprintf(f, "%%!%c(linkedslab.Map=%s)", verb, m.String())
	}
}
