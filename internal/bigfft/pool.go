// Scratch buffers for the transform, recycled by power-of-two size class.

package bigfft

import (
	"math/bits"
	"sync"

	"github.com/agbru/bignum/internal/arith"
)

// ─────────────────────────────────────────────────────────────────────────────
// Size-Class Pool
// ─────────────────────────────────────────────────────────────────────────────

// slicePool recycles slices whose capacity is a power of two between
// 1<<minShift and 1<<maxShift elements. Larger requests are allocated
// directly and left to the garbage collector.
type slicePool[S ~[]E, E any] struct {
	minShift, maxShift uint
	classes            []sync.Pool
}

func newSlicePool[S ~[]E, E any](minShift, maxShift uint) *slicePool[S, E] {
	p := &slicePool[S, E]{
		minShift: minShift,
		maxShift: maxShift,
		classes:  make([]sync.Pool, maxShift-minShift+1),
	}
	for i := range p.classes {
		size := p.classSize(i)
		p.classes[i].New = func() any { return make(S, size) }
	}
	return p
}

// class returns the smallest class holding size elements, or -1 when size
// is beyond the largest class.
func (p *slicePool[S, E]) class(size int) int {
	shift := uint(bits.Len(uint(max(size, 1) - 1)))
	if shift > p.maxShift {
		return -1
	}
	return int(max(shift, p.minShift) - p.minShift)
}

func (p *slicePool[S, E]) classSize(c int) int {
	return 1 << (p.minShift + uint(c))
}

// get returns a zeroed slice of length size.
func (p *slicePool[S, E]) get(size int) S {
	c := p.class(size)
	if c < 0 {
		return make(S, size)
	}
	s := p.classes[c].Get().(S)[:size]
	clear(s)
	return s
}

// put recycles s when its capacity is exactly a class size; anything else
// did not come from the pool. A nil s is ignored.
func (p *slicePool[S, E]) put(s S) {
	n := cap(s)
	if n == 0 {
		return
	}
	if c := p.class(n); c >= 0 && p.classSize(c) == n {
		p.classes[c].Put(s[:n])
	}
}

// seed adds count buffers to the class serving size.
func (p *slicePool[S, E]) seed(size, count int) {
	c := p.class(size)
	if c < 0 {
		return
	}
	for range count {
		p.classes[c].Put(make(S, p.classSize(c)))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transform Pools
// ─────────────────────────────────────────────────────────────────────────────

// maxK bounds the transform length: fftSize never picks k beyond the end
// of fftSizeThreshold.
const maxK = len(fftSizeThreshold)

var (
	// wordPool backs polValues (K values of n+1 words each) and the
	// pointwise product buffer of 8n words.
	wordPool = newSlicePool[[]arith.Word](6, 24)
	// fermatPool holds single n+1 word values: the butterfly temporaries
	// and the inverse transform's scaling buffer.
	fermatPool = newSlicePool[fermat](5, 21)
	// coefficientPool holds the K coefficient headers of a poly.
	coefficientPool = newSlicePool[[]nat](3, uint(maxK))
	// valuePool holds the K value headers of a polValues.
	valuePool = newSlicePool[[]fermat](3, uint(maxK))
)
