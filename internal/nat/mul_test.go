package nat

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/bignum/internal/config"
)

// ─────────────────────────────────────────────────────────────────────────────
// Cross-algorithm equivalence
// ─────────────────────────────────────────────────────────────────────────────

// TestMulAlgorithmsAgree forces every multiplication algorithm at the top
// level on the same operands and requires identical limb vectors.
func TestMulAlgorithmsAgree(t *testing.T) {
	t.Parallel()
	r := newRand(10)
	shapes := [][2]int{
		{1, 1}, {2, 1}, {7, 3}, {24, 24}, {40, 17}, {63, 35},
		{81, 80}, {130, 70}, {150, 100}, {211, 200}, {300, 41},
	}
	for _, sh := range shapes {
		x, y := randNat(r, sh[0]), randNat(r, sh[1])
		want := new(big.Int).Mul(toBig(x), toBig(y))
		t.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(t *testing.T) {
			t.Parallel()
			ref := MulWith(Basecase, x, y)
			assertNat(t, "basecase", ref, want)
			for _, alg := range MulAlgorithms {
				got := MulWith(alg, x, y)
				if diff := cmp.Diff([]Word(ref), []Word(got)); diff != "" {
					t.Fatalf("%v disagrees with basecase (-want +got):\n%s", alg, diff)
				}
			}
		})
	}
}

// TestMulAlgorithmsCarryStress uses all-ones operands, where every
// evaluation and interpolation step carries through the full width.
func TestMulAlgorithmsCarryStress(t *testing.T) {
	t.Parallel()
	for _, n := range []int{2, 9, 33, 97} {
		x := onesNat(n)
		y := onesNat(n/2 + 1)
		want := new(big.Int).Mul(toBig(x), toBig(y))
		for _, alg := range MulAlgorithms {
			assertNat(t, fmt.Sprintf("%v/%d", alg, n), MulWith(alg, x, y), want)
			assertNat(t, fmt.Sprintf("%v/sqr/%d", alg, n), SqrWith(alg, x), new(big.Int).Mul(toBig(x), toBig(x)))
		}
	}
}

func TestSqrAlgorithmsAgree(t *testing.T) {
	t.Parallel()
	r := newRand(11)
	for _, n := range []int{1, 2, 5, 24, 90, 257} {
		x := randNat(r, n)
		want := new(big.Int).Mul(toBig(x), toBig(x))
		for _, alg := range MulAlgorithms {
			assertNat(t, fmt.Sprintf("%v/%d", alg, n), SqrWith(alg, x), want)
		}
		assertNat(t, "auto", Nat(nil).Sqr(x), want)
	}
}

// TestBasecaseMatchesFFTLarge multiplies two 10,000-limb operands through
// the schoolbook and transform paths.
func TestBasecaseMatchesFFTLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10,000-limb schoolbook product in short mode")
	}
	t.Parallel()
	r := newRand(12)
	x, y := randNat(r, 10000), randNat(r, 10000)
	basic := MulWith(Basecase, x, y)
	fft := MulWith(FFT, x, y)
	if diff := cmp.Diff([]Word(basic), []Word(fft)); diff != "" {
		t.Fatalf("basecase and FFT products differ:\n%s", diff)
	}
	assertNat(t, "fft", fft, new(big.Int).Mul(toBig(x), toBig(y)))
}

func TestMulAliasing(t *testing.T) {
	t.Parallel()
	r := newRand(13)
	x := randNat(r, 30)
	want := new(big.Int).Mul(toBig(x), toBig(x))
	z := Clone(x)
	z = z.Mul(z, z)
	assertNat(t, "z = z*z", z, want)
	z = Clone(x)
	z = z.Sqr(z)
	assertNat(t, "z = z²", z, want)
}

// TestProductsReuseReceiver requires every algorithm to leave its result in
// the receiver's storage when the receiver has room for it.
func TestProductsReuseReceiver(t *testing.T) {
	t.Parallel()
	r := newRand(15)
	x, y := randNat(r, 90), randNat(r, 60)
	wantMul := new(big.Int).Mul(toBig(x), toBig(y))
	wantSqr := new(big.Int).Mul(toBig(x), toBig(x))
	for _, alg := range MulAlgorithms {
		z := make(Nat, 0, 2*len(x))
		got := runMul(z, alg, x, y)
		assertNat(t, fmt.Sprintf("%v/mul", alg), got, wantMul)
		if &got[0] != &z[:1][0] {
			t.Errorf("%v: product not written into the receiver", alg)
		}
		got = runSqr(z, alg, x)
		assertNat(t, fmt.Sprintf("%v/sqr", alg), got, wantSqr)
		if &got[0] != &z[:1][0] {
			t.Errorf("%v: square not written into the receiver", alg)
		}
	}
	if small := runMul(make(Nat, 0, 4), Toom33, x, y); cap(small) < len(x)+len(y)-1 {
		t.Errorf("short receiver kept: cap %d", cap(small))
	}
}

func TestMulZero(t *testing.T) {
	t.Parallel()
	x := randNat(newRand(14), 50)
	for _, alg := range MulAlgorithms {
		if got := MulWith(alg, x, nil); len(got) != 0 {
			t.Errorf("%v: x*0 = %v", alg, []Word(got))
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────────────────────────────────────

func TestSelectMul(t *testing.T) {
	t.Parallel()
	th := config.EstimateThresholds(64)
	tests := []struct {
		nx, ny int
		want   Algorithm
	}{
		{1, 1, Basecase},
		{500, 1, Basecase},
		{th.Toom22 - 1, th.Toom22 - 1, Basecase},
		{th.Toom22, th.Toom22, Toom22},
		{th.Toom33, th.Toom33, Toom33},
		{th.Toom44, th.Toom44, Toom44},
		{th.Toom6H, th.Toom6H, Toom6H},
		{th.Toom8H, th.Toom8H, Toom8H},
		{th.FFT, th.FFT, FFT},
		{300, 100, Chunked},
		{190, 100, Toom42},
		{170, 100, Toom53},
		{150, 100, Toom32},
		{130, 100, Toom43},
		{2 * th.Toom6H, th.Toom6H, Toom63},
	}
	for _, tt := range tests {
		if got := selectMul(tt.nx, tt.ny, &th); got != tt.want {
			t.Errorf("selectMul(%d, %d) = %v, want %v", tt.nx, tt.ny, got, tt.want)
		}
	}
}

func TestSelectSqr(t *testing.T) {
	t.Parallel()
	th := config.EstimateThresholds(64)
	tests := []struct {
		n    int
		want Algorithm
	}{
		{1, Basecase},
		{th.Toom22, Toom22},
		{th.Toom44, Toom44},
		{th.FFTSquare, FFT},
	}
	for _, tt := range tests {
		if got := selectSqr(tt.n, &th); got != tt.want {
			t.Errorf("selectSqr(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

// TestMulAutoWithLowThresholds shrinks every band so the automatic
// dispatcher recurses through Toom and FFT on small operands.
func TestMulAutoWithLowThresholds(t *testing.T) {
	withThresholds(t, config.Thresholds{
		Toom22: 4, Toom33: 8, Toom44: 12, Toom6H: 16, Toom8H: 24,
		FFT: 64, FFTSquare: 64, DivNewton: 4, DivNewtonQuotient: 1,
		GCDLehmer: 2, ToStringDivideAndConquer: 2,
	})
	r := newRand(15)
	for _, sh := range [][2]int{{5, 4}, {13, 9}, {20, 20}, {45, 12}, {70, 66}, {200, 150}} {
		x, y := randNat(r, sh[0]), randNat(r, sh[1])
		assertNat(t, fmt.Sprintf("%dx%d", sh[0], sh[1]), Nat(nil).Mul(x, y), new(big.Int).Mul(toBig(x), toBig(y)))
		assertNat(t, fmt.Sprintf("sqr %d", sh[0]), Nat(nil).Sqr(x), new(big.Int).Mul(toBig(x), toBig(x)))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Properties
// ─────────────────────────────────────────────────────────────────────────────

func genNat(maxLimbs int) gopter.Gen {
	return gen.SliceOf(gen.UInt64()).Map(func(ws []uint64) Nat {
		if len(ws) > maxLimbs {
			ws = ws[:maxLimbs]
		}
		z := make(Nat, len(ws))
		for i, w := range ws {
			z[i] = Word(w)
		}
		return z.Norm()
	})
}

func TestMulProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("multiplication is commutative", prop.ForAll(
		func(x, y Nat) bool {
			return Nat(nil).Mul(x, y).Cmp(Nat(nil).Mul(y, x)) == 0
		},
		genNat(40), genNat(40),
	))
	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(x, y, z Nat) bool {
			lhs := Nat(nil).Mul(x, Nat(nil).Add(y, z))
			rhs := Nat(nil).Add(Nat(nil).Mul(x, y), Nat(nil).Mul(x, z))
			return lhs.Cmp(rhs) == 0
		},
		genNat(30), genNat(30), genNat(30),
	))
	properties.Property("squaring equals self-multiplication", prop.ForAll(
		func(x Nat) bool {
			return Nat(nil).Sqr(x).Cmp(MulWith(Basecase, x, x)) == 0
		},
		genNat(60),
	))
	properties.Property("every Toom shape matches basecase", prop.ForAll(
		func(x, y Nat) bool {
			ref := MulWith(Basecase, x, y)
			for _, alg := range []Algorithm{Toom22, Toom32, Toom33, Toom42, Toom43, Toom44, Toom53, Toom63, Toom6H, Toom8H} {
				if MulWith(alg, x, y).Cmp(ref) != 0 {
					t.Logf("%v mismatch for %d x %d limbs", alg, len(x), len(y))
					return false
				}
			}
			return true
		},
		genNat(50), genNat(50),
	))

	properties.TestingRun(t)
}

// ─────────────────────────────────────────────────────────────────────────────
// Fuzzing
// ─────────────────────────────────────────────────────────────────────────────

func natFromBytes(b []byte) Nat {
	return fromBig(new(big.Int).SetBytes(b))
}

func FuzzMulAlgorithms(f *testing.F) {
	f.Add([]byte{1}, []byte{2})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, []byte{0xff, 0xff})
	f.Add(make([]byte, 300), []byte{3})
	f.Fuzz(func(t *testing.T, a, b []byte) {
		if len(a) > 4096 || len(b) > 4096 {
			t.Skip()
		}
		x, y := natFromBytes(a), natFromBytes(b)
		want := new(big.Int).Mul(toBig(x), toBig(y))
		for _, alg := range MulAlgorithms {
			assertNat(t, alg.String(), MulWith(alg, x, y), want)
		}
	})
}

func BenchmarkMul(b *testing.B) {
	r := newRand(16)
	for _, n := range []int{16, 64, 256, 1024, 4096} {
		x, y := randNat(r, n), randNat(r, n)
		b.Run(fmt.Sprintf("limbs=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			var z Nat
			for b.Loop() {
				z = z.Mul(x, y)
			}
		})
	}
}
