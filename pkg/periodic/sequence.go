// Package periodic provides eventually periodic sequences: a finite prefix
// followed by a cycle repeated forever, such as the digits of a rational
// number's expansion.
//
// A Sequence is always held in reduced form. The cycle is as short as
// possible, and the prefix is as short as possible, so two sequences that
// produce the same infinite stream of elements compare equal and hash
// alike.
package periodic

import (
	"fmt"
	"iter"
	"strings"
)

// Sequence is an eventually periodic sequence of T. The zero value is the
// empty sequence. A Sequence with an empty cycle is finite.
type Sequence[T comparable] struct {
	prefix []T
	cycle  []T
}

// New returns the reduced sequence prefix, cycle, cycle, .... The slices
// are copied.
func New[T comparable](prefix, cycle []T) Sequence[T] {
	p, c := reduce(clone(prefix), clone(cycle))
	return Sequence[T]{prefix: p, cycle: c}
}

// Finite returns the finite sequence of elems.
func Finite[T comparable](elems ...T) Sequence[T] {
	return Sequence[T]{prefix: clone(elems)}
}

func clone[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return append([]T(nil), s...)
}

// reduce shrinks the cycle to its minimal period, then moves the last
// prefix element into the cycle, rotating it, while that element equals
// the cycle's last element. Both steps keep the represented stream unchanged.
func reduce[T comparable](prefix, cycle []T) ([]T, []T) {
	if len(cycle) == 0 {
		return prefix, nil
	}
	cycle = cycle[:minimalPeriod(cycle)]
	n := len(cycle)
	for len(prefix) > 0 && prefix[len(prefix)-1] == cycle[n-1] {
		last := cycle[n-1]
		copy(cycle[1:], cycle[:n-1])
		cycle[0] = last
		prefix = prefix[:len(prefix)-1]
	}
	if len(prefix) == 0 {
		prefix = nil
	}
	return prefix, cycle
}

// minimalPeriod returns the smallest d dividing len(c) such that c is made
// of len(c)/d copies of c[:d].
func minimalPeriod[T comparable](c []T) int {
	n := len(c)
	for d := 1; d < n; d++ {
		if n%d == 0 && isPeriodic(c, d) {
			return d
		}
	}
	return n
}

func isPeriodic[T comparable](c []T, d int) bool {
	for i := d; i < len(c); i++ {
		if c[i] != c[i-d] {
			return false
		}
	}
	return true
}

// Valid reports whether s is in reduced form. Sequences built by this
// package always are.
func (s Sequence[T]) Valid() bool {
	if len(s.cycle) == 0 {
		return true
	}
	if minimalPeriod(s.cycle) != len(s.cycle) {
		return false
	}
	return len(s.prefix) == 0 || s.prefix[len(s.prefix)-1] != s.cycle[len(s.cycle)-1]
}

// Prefix returns a copy of the non-repeating part.
func (s Sequence[T]) Prefix() []T { return clone(s.prefix) }

// Cycle returns a copy of the repeating part; nil for a finite sequence.
func (s Sequence[T]) Cycle() []T { return clone(s.cycle) }

// IsFinite reports whether s has no repeating part.
func (s Sequence[T]) IsFinite() bool { return len(s.cycle) == 0 }

// Len returns the number of elements and true for a finite sequence, or
// (0, false) for an infinite one.
func (s Sequence[T]) Len() (int, bool) {
	if len(s.cycle) > 0 {
		return 0, false
	}
	return len(s.prefix), true
}

// Get returns element i. ok is false for negative i or past the end of a
// finite sequence.
func (s Sequence[T]) Get(i int) (v T, ok bool) {
	switch {
	case i < 0:
		return v, false
	case i < len(s.prefix):
		return s.prefix[i], true
	case len(s.cycle) == 0:
		return v, false
	}
	return s.cycle[(i-len(s.prefix))%len(s.cycle)], true
}

// All yields the prefix once and then the cycle forever. Each call
// restarts from the first element; the consumer decides when to stop.
func (s Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.prefix {
			if !yield(v) {
				return
			}
		}
		if len(s.cycle) == 0 {
			return
		}
		for {
			for _, v := range s.cycle {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Take returns the first n elements, or fewer if s is finite and shorter.
func (s Sequence[T]) Take(n int) []T {
	out := make([]T, 0, n)
	if n <= 0 {
		return out
	}
	for v := range s.All() {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Equal reports whether s and o produce the same stream.
func (s Sequence[T]) Equal(o Sequence[T]) bool {
	return equal(s.prefix, o.prefix) && equal(s.cycle, o.cycle)
}

func equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders s as "[p1, p2, [c1, c2]]"; the inner brackets hold the
// cycle and are omitted for a finite sequence.
func (s Sequence[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.prefix {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	if len(s.cycle) > 0 {
		if len(s.prefix) > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for i, v := range s.cycle {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprint(&b, v)
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
