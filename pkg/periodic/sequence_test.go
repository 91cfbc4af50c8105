package periodic

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		prefix, cycle []int
		want          string
	}{
		{"prefix and cycle", []int{1, 2, 3}, []int{4, 5, 6}, "[1, 2, 3, [4, 5, 6]]"},
		{"period shrinks", []int{1, 2}, []int{3, 4, 3, 4}, "[1, 2, [3, 4]]"},
		{"empty", nil, nil, "[]"},
		{"finite", []int{1, 2}, nil, "[1, 2]"},
		{"pure cycle", nil, []int{7}, "[[7]]"},
		{"constant cycle", nil, []int{7, 7, 7, 7}, "[[7]]"},
		{"absorbed prefix", []int{1, 3, 4}, []int{3, 4}, "[1, [3, 4]]"},
		{"fully absorbed", []int{5, 6, 5, 6}, []int{5, 6}, "[[5, 6]]"},
		{"rotated", []int{9, 2}, []int{1, 2}, "[9, [2, 1]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := New(tt.prefix, tt.cycle)
			assert.Equal(t, tt.want, s.String())
			assert.True(t, s.Valid())
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	t.Parallel()
	prefix, cycle := []int{1}, []int{2, 3}
	s := New(prefix, cycle)
	prefix[0], cycle[0] = 9, 9
	assert.Equal(t, "[1, [2, 3]]", s.String())

	p := s.Prefix()
	p[0] = 42
	assert.Equal(t, []int{1}, s.Prefix())
}

func TestGetLenTake(t *testing.T) {
	t.Parallel()
	s := New([]int{1, 2}, []int{3, 4})
	_, finite := s.Len()
	assert.False(t, finite)
	assert.False(t, s.IsFinite())
	assert.Equal(t, []int{1, 2, 3, 4, 3, 4, 3}, s.Take(7))
	v, ok := s.Get(1001)
	require.True(t, ok)
	assert.Equal(t, 4, v)
	_, ok = s.Get(-1)
	assert.False(t, ok)

	f := Finite("a", "b")
	n, finite := f.Len()
	assert.True(t, finite)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "b"}, f.Take(10))
	_, ok = f.Get(2)
	assert.False(t, ok)
	assert.Empty(t, f.Take(0))
	assert.Equal(t, []int{}, New[int](nil, nil).Take(4))
}

func TestAllRestarts(t *testing.T) {
	t.Parallel()
	s := New([]string{"x"}, []string{"y", "z"})
	for range 2 {
		var got []string
		for v := range s.All() {
			got = append(got, v)
			if len(got) == 5 {
				break
			}
		}
		assert.Equal(t, []string{"x", "y", "z", "y", "z"}, got)
	}

	var got []int
	for v := range Finite(1, 2, 3).All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestEqualAndHash(t *testing.T) {
	t.Parallel()
	h := NewHasher[int]()
	a := New([]int{1, 2}, []int{3, 4})
	b := New([]int{1, 2, 3, 4}, []int{3, 4, 3, 4})
	c := New([]int{1, 2}, []int{4, 3})
	assert.True(t, a.Equal(b))
	assert.Equal(t, h.Hash(a), b.Hash(h))
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, h.Hash(a), h.Hash(c))

	// Same elements split differently between prefix and cycle.
	assert.NotEqual(t, h.Hash(Finite(1, 2)), h.Hash(New([]int{1}, []int{2})))
}

func genRaw() gopter.Gen {
	return gopter.CombineGens(
		gen.SliceOf(gen.IntRange(0, 2)),
		gen.SliceOf(gen.IntRange(0, 2)),
	)
}

func TestReduceProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("reduction is idempotent", prop.ForAll(
		func(raw []any) bool {
			s := New(raw[0].([]int), raw[1].([]int))
			return New(s.Prefix(), s.Cycle()).Equal(s) && s.Valid()
		},
		genRaw(),
	))
	properties.Property("reduction preserves the stream", prop.ForAll(
		func(raw []any) bool {
			prefix, cycle := raw[0].([]int), raw[1].([]int)
			s := New(prefix, cycle)
			n := len(prefix) + 3*len(cycle) + 4
			want := append([]int{}, prefix...)
			for len(cycle) > 0 && len(want) < n {
				want = append(want, cycle...)
			}
			want = want[:min(n, len(want))]
			return assert.ObjectsAreEqual(want, s.Take(n))
		},
		genRaw(),
	))
	properties.Property("equal streams reduce to the same form", prop.ForAll(
		func(raw []any) bool {
			prefix, cycle := raw[0].([]int), raw[1].([]int)
			if len(cycle) == 0 {
				return true
			}
			// Unroll one cycle into the prefix and double the cycle.
			longer := append(append([]int(nil), prefix...), cycle...)
			doubled := append(append([]int(nil), cycle...), cycle...)
			return New(prefix, cycle).Equal(New(longer, doubled))
		},
		genRaw(),
	))

	properties.TestingRun(t)
}
