package bigfft

// Footprint is the set of pooled buffers one transform product draws on.
type Footprint struct {
	K          uint // log2 of the transform length
	ChunkWords int  // words per input coefficient
	ValueWords int  // words per transform value, without the carry word
}

// FootprintFor returns the transform parameters for a product of operands
// with the given limb counts.
func FootprintFor(xLimbs, yLimbs int) Footprint {
	k, m := fftSize(make(nat, xLimbs), make(nat, yLimbs))
	return Footprint{K: k, ChunkWords: m, ValueWords: valueSize(k, m, 2)}
}

// ValueBufferWords is the size of one polValues backing buffer.
func (f Footprint) ValueBufferWords() int { return (f.ValueWords + 1) << f.K }

// Peak buffer counts of one product. A multiplication holds both operand
// transforms, the pointwise product and one transform scratch at once;
// each butterfly pass needs two temporaries and the inverse transform a
// third value for scaling.
const (
	liveValueBuffers  = 4
	liveFermatBuffers = 3
	liveCoefficients  = 3
)

// Warm seeds the pools with the buffers a product of xLimbs by yLimbs
// limbs will request, so that the first products at that size do not pay
// for allocation. Products below the transform threshold draw nothing
// and need no warming.
func Warm(xLimbs, yLimbs int) {
	if xLimbs <= 0 || yLimbs <= 0 {
		return
	}
	f := FootprintFor(xLimbs, yLimbs)
	K := 1 << f.K
	wordPool.seed(f.ValueBufferWords(), liveValueBuffers)
	wordPool.seed(8*f.ValueWords, 1)
	valuePool.seed(K, liveValueBuffers)
	fermatPool.seed(f.ValueWords+1, liveFermatBuffers)
	coefficientPool.seed(K, liveCoefficients)
}
