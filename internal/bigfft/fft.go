// Package bigfft implements multiplication of limb vectors using FFT.
//
// The implementation is based on the Schönhage-Strassen method
// using integer FFT modulo 2^n+1. Pointwise products of transform values
// are delegated to a caller-supplied MulFunc so that they run through the
// same algorithm dispatch as top-level products.
package bigfft

import "github.com/agbru/bignum/internal/arith"

// MulFunc returns the normalized product of two normalized limb vectors in
// fresh storage. Called with the same slice twice it computes a square.
type MulFunc func(x, y []arith.Word) []arith.Word

// Mul returns the normalized product x*y. x and y must be normalized.
func Mul(x, y []arith.Word, mul MulFunc) []arith.Word {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	return fftmul(nat(x), nat(y), mul)
}

// Sqr returns the normalized square of x, transforming x only once.
func Sqr(x []arith.Word, mul MulFunc) []arith.Word {
	if len(x) == 0 {
		return nil
	}
	return fftsqr(nat(x), mul)
}

// A FFT size of K=1<<k is adequate when K is about 2*sqrt(N) where
// N = x.Bitlen() + y.Bitlen().

func fftmul(x, y nat, mul MulFunc) nat {
	k, m := fftSize(x, y)
	xp := polyFromNat(x, k, m)
	yp := polyFromNat(y, k, m)
	defer coefficientPool.put(xp.a)
	defer coefficientPool.put(yp.a)
	return xp.Mul(&yp, mul)
}

func fftsqr(x nat, mul MulFunc) nat {
	k, m := fftSize(x, x)
	xp := polyFromNat(x, k, m)
	defer coefficientPool.put(xp.a)
	return xp.Sqr(mul)
}

// fftSizeThreshold[i] is the maximal size (in bits) where we should use
// fft size i.
var fftSizeThreshold = [...]int64{0, 0, 0,
	4 << 10, 8 << 10, 16 << 10, // 5
	32 << 10, 64 << 10, 1 << 18, 1 << 20, 3 << 20, // 10
	8 << 20, 30 << 20, 100 << 20, 300 << 20, 600 << 20,
}

// fftSize returns the FFT length k, m the number of words per chunk
// such that m << k is larger than the number of words
// in x*y.
func fftSize(x, y nat) (k uint, m int) {
	words := len(x) + len(y)
	bits := int64(words) * int64(_W)
	k = uint(len(fftSizeThreshold))
	for i := range fftSizeThreshold {
		if fftSizeThreshold[i] > bits {
			k = uint(i)
			break
		}
	}
	// The 1<<k chunks of m words must have N bits so that
	// 2^N-1 is larger than x*y. That is, m<<k > words
	m = words>>k + 1
	return
}

// valueSize returns the length (in words) to use for polynomial
// coefficients, to compute a correct product of polynomials P*Q
// where deg(P*Q) < K (== 1<<k) and where coefficients of P and Q are
// less than b^m (== 1 << (m*_W)).
// The chosen length (in bits) must be a multiple of 1 << (k-extra).
func valueSize(k uint, m int, extra uint) int {
	// The coefficients of P*Q are less than b^(2m)*K
	// so we need W * valueSize >= 2*m*W+K
	n := 2*m*_W + int(k) // necessary bits
	K := 1 << (k - extra)
	if K < _W {
		K = _W
	}
	n = ((n / K) + 1) * K // round to a multiple of K
	return n / _W
}

// poly represents an integer via a polynomial in Z[x]/(x^K+1)
// where K is the FFT length and b^m is the computation basis 1<<(m*_W).
// If P = a[0] + a[1] x + ... a[n] x^(K-1), the associated natural number
// is P(b^m).
type poly struct {
	k uint  // k is such that K = 1<<k.
	m int   // the m such that P(b^m) is the original number.
	a []nat // a slice of at most K m-word coefficients.
}

// polyFromNat slices the number x into a polynomial
// with 1<<k coefficients made of m words.
func polyFromNat(x nat, k uint, m int) poly {
	p := poly{k: k, m: m}
	length := len(x)/m + 1
	p.a = coefficientPool.get(length)
	for i := range p.a {
		if len(x) < m {
			p.a[i] = make(nat, m)
			copy(p.a[i], x)
			p.a = p.a[:i+1]
			break
		}
		p.a[i] = x[:m]
		x = x[m:]
	}
	return p
}

// Int evaluates back a poly to its integer value.
func (p *poly) Int() nat {
	length := len(p.a)*p.m + 1
	if na := len(p.a); na > 0 {
		length += len(p.a[na-1])
	}
	n := make(nat, length)
	m := p.m
	np := n
	for i := range p.a {
		l := len(p.a[i])
		c := addVV(np[:l], np[:l], p.a[i])
		if np[l] < arith.M {
			np[l] += c
		} else {
			addVW(np[l:], np[l:], c)
		}
		np = np[m:]
	}
	return trim(n)
}

// Mul multiplies p and q modulo X^K-1, where K = 1<<p.k, and returns the
// evaluated product. The product is done via a Fourier transform.
func (p *poly) Mul(q *poly, mul MulFunc) nat {
	// extra=2 because:
	// * some power of 2 is a K-th root of unity when n is a multiple of K/2.
	// * 2 itself is a square (see fermat.ShiftHalf)
	n := valueSize(p.k, p.m, 2)

	pv, qv := p.Transform(n), q.Transform(n)
	defer pv.release()
	defer qv.release()
	rv := pv.Mul(&qv, mul)
	defer rv.release()
	return rv.InvTransform(p.m)
}

// Sqr squares p modulo X^K-1 with a single forward transform.
func (p *poly) Sqr(mul MulFunc) nat {
	n := valueSize(p.k, p.m, 2)
	pv := p.Transform(n)
	defer pv.release()
	rv := pv.Mul(&pv, mul)
	defer rv.release()
	return rv.InvTransform(p.m)
}

// A polValues represents the value of a poly at the powers of a
// K-th root of unity θ=2^(l/2) in Z/(b^n+1)Z, where b^n = 2^(K/4*l).
type polValues struct {
	k      uint     // k is such that K = 1<<k.
	n      int      // the length of coefficients, n*_W a multiple of K/4.
	values []fermat // a slice of K (n+1)-word values
	bits   []arith.Word
}

func newPolValues(k uint, n int) polValues {
	v := polValues{k: k, n: n}
	v.bits = wordPool.get((n + 1) << k)
	v.values = valuePool.get(1 << k)
	for i := range v.values {
		v.values[i] = fermat(v.bits[i*(n+1) : (i+1)*(n+1)])
	}
	return v
}

func (v *polValues) release() {
	wordPool.put(v.bits)
	valuePool.put(v.values)
	v.bits, v.values = nil, nil
}

// Transform evaluates p at θ^i for i = 0...K-1, where
// θ is a K-th primitive root of unity in Z/(b^n+1)Z.
func (p *poly) Transform(n int) polValues {
	k := p.k
	input := newPolValues(k, n)
	defer input.release()
	for i := range input.values {
		if i < len(p.a) {
			copy(input.values[i], p.a[i])
		}
	}
	// Now computed q(ω^i) for i = 0 ... K-1
	values := newPolValues(k, n)
	fourier(values.values, input.values, false, n, k)
	return values
}

// InvTransform reconstructs p (modulo X^K - 1) from its values at θ^i for
// i = 0..K-1 and evaluates it at b^m.
func (v *polValues) InvTransform(m int) nat {
	k, n := v.k, v.n

	// Perform an inverse Fourier transform to recover p.
	p := newPolValues(k, n)
	defer p.release()
	fourier(p.values, v.values, true, n, k)
	// Divide by K.
	u := fermatPool.get(n + 1)
	defer fermatPool.put(u)
	a := coefficientPool.get(1 << k)
	defer coefficientPool.put(a)
	for i := range p.values {
		u.Shift(p.values[i], -int(k))
		copy(p.values[i], u)
		a[i] = nat(p.values[i])
	}
	r := poly{k: k, m: m, a: a}
	return r.Int()
}

// fourier performs an unnormalized Fourier transform
// of src, a length 1<<k vector of numbers modulo b^n+1
// where b = 1<<_W.
func fourier(dst []fermat, src []fermat, backward bool, n int, k uint) {
	var rec func(dst, src []fermat, size uint)
	tmp, tmp2 := fermatPool.get(n+1), fermatPool.get(n+1)
	defer fermatPool.put(tmp)
	defer fermatPool.put(tmp2)

	// The recursion function of the FFT.
	// The root of unity used in the transform is ω=1<<(ω2shift/2).
	// The source array may use shifted indices (i.e. the i-th
	// element is src[i << idxShift]).
	rec = func(dst, src []fermat, size uint) {
		idxShift := k - size
		ω2shift := (4 * n * _W) >> size
		if backward {
			ω2shift = -ω2shift
		}

		// Easy cases.
		if len(src[0]) != n+1 || len(dst[0]) != n+1 {
			panic("len(src[0]) != n+1 || len(dst[0]) != n+1")
		}
		switch size {
		case 0:
			copy(dst[0], src[0])
			return
		case 1:
			dst[0].Add(src[0], src[1<<idxShift]) // dst[0] = src[0] + src[1]
			dst[1].Sub(src[0], src[1<<idxShift]) // dst[1] = src[0] - src[1]
			return
		}

		// Let P(x) = src[0] + src[1<<idxShift] * x + ... + src[K-1 << idxShift] * x^(K-1)
		// The P(x) = Q1(x²) + x*Q2(x²)
		// where Q1's coefficients are src with indices shifted by 1
		// where Q2's coefficients are src[1<<idxShift:] with indices shifted by 1

		// Split destination vectors in halves.
		dst1 := dst[:1<<(size-1)]
		dst2 := dst[1<<(size-1):]
		// Transform Q1 and Q2 in the halves.
		rec(dst1, src, size-1)
		rec(dst2, src[1<<idxShift:], size-1)

		// Reconstruct P's transform from transforms of Q1 and Q2.
		// dst[i]            is dst1[i] + ω^i * dst2[i]
		// dst[i + 1<<(k-1)] is dst1[i] + ω^(i+K/2) * dst2[i]
		for i := range dst1 {
			tmp.ShiftHalf(dst2[i], i*ω2shift, tmp2) // ω^i * dst2[i]
			dst2[i].Sub(dst1[i], tmp)
			dst1[i].Add(dst1[i], tmp)
		}
	}
	rec(dst, src, k)
}

// Mul returns the pointwise product of p and q.
func (p *polValues) Mul(q *polValues, mul MulFunc) polValues {
	n := p.n
	r := newPolValues(p.k, n)
	buf := wordPool.get(8 * n)
	defer wordPool.put(buf)
	for i := range r.values {
		var z fermat
		if p == q {
			z = fermat(buf).Sqr(p.values[i], mul)
		} else {
			z = fermat(buf).Mul(p.values[i], q.values[i], mul)
		}
		copy(r.values[i], z)
	}
	return r
}
