package nat

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	apperrors "github.com/agbru/bignum/internal/errors"
)

var divAlgorithms = []Algorithm{DivBasecase, DivNewton}

func checkDivMod(t *testing.T, what string, u, v, q, r Nat) {
	t.Helper()
	bq, br := new(big.Int).QuoRem(toBig(u), toBig(v), new(big.Int))
	assertNat(t, what+" quotient", q, bq)
	assertNat(t, what+" remainder", r, br)
}

func TestDivModMatchesBigInt(t *testing.T) {
	t.Parallel()
	r := newRand(20)
	shapes := [][2]int{
		{1, 1}, {2, 1}, {2, 2}, {5, 2}, {9, 8}, {20, 7}, {64, 9},
		{150, 20}, {300, 130}, {400, 199}, {900, 260},
	}
	for _, sh := range shapes {
		u, v := randNat(r, sh[0]), randNat(r, sh[1])
		t.Run(fmt.Sprintf("%d/%d", sh[0], sh[1]), func(t *testing.T) {
			t.Parallel()
			q, rem := DivMod(u, v)
			checkDivMod(t, "auto", u, v, q, rem)
			for _, alg := range divAlgorithms {
				q, rem := DivWith(alg, u, v)
				checkDivMod(t, alg.String(), u, v, q, rem)
			}
		})
	}
}

// TestDivModAddBack picks divisors whose trial quotients overshoot: a top
// limb of all ones over a dividend of all ones forces the add-back step.
func TestDivModAddBack(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		u, v Nat
	}{
		{"ones", onesNat(12), onesNat(5)},
		{"top heavy", Nat{0, 0, 0, 0, 1 << (W - 1)}, Nat{1, 0, 1 << (W - 1)}},
		{"near power", Nat{M, M, M, M, M, M, 0x7fff}, Nat{1, 0, 0x8000}},
		{"equal", onesNat(9), onesNat(9)},
		{"smaller", onesNat(3), onesNat(4)},
	}
	for _, tc := range cases {
		for _, alg := range divAlgorithms {
			q, r := DivWith(alg, tc.u, tc.v)
			checkDivMod(t, tc.name+"/"+alg.String(), tc.u, tc.v, q, r)
		}
	}
}

func TestDivSmall(t *testing.T) {
	t.Parallel()
	u := randNat(newRand(21), 40)
	for _, d := range []Word{1, 2, 3, 10, M} {
		v := Nat{d}
		q, r := DivWith(DivSmall, u, v)
		checkDivMod(t, fmt.Sprintf("d=%d", d), u, v, q, r)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		var pe *apperrors.PreconditionError
		err, _ := recover().(error)
		if !errors.As(err, &pe) || pe.Kind != apperrors.DivisionByZero {
			t.Fatalf("recover() = %v, want DivisionByZero precondition", err)
		}
	}()
	DivMod(Nat{1}, nil)
}

func TestReciprocalExact(t *testing.T) {
	t.Parallel()
	r := newRand(22)
	for _, n := range []int{1, 2, 7, 8, 9, 16, 33, 100} {
		v := randNat(r, n)
		got := Reciprocal(v)
		vn := new(big.Int).Lsh(toBig(v), uint(n*W-v.BitLen()))
		want := new(big.Int).Lsh(big.NewInt(1), uint(2*n*W))
		want.Quo(want, vn)
		assertNat(t, fmt.Sprintf("recip %d limbs", n), got, want)
	}
	// The smallest normalized divisor has the largest reciprocal.
	v := Nat{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1 << (W - 1)}
	want := new(big.Int).Lsh(big.NewInt(1), uint(2*len(v)*W))
	want.Quo(want, toBig(v))
	assertNat(t, "min divisor", Reciprocal(v), want)
}

func TestDivExact(t *testing.T) {
	t.Parallel()
	r := newRand(23)
	for _, sh := range [][2]int{{1, 1}, {3, 2}, {10, 4}, {50, 50}, {120, 31}} {
		a, b := randNat(r, sh[0]), randNat(r, sh[1])
		// Exercise the power-of-two path too.
		b = b.Shl(b, 13)
		u := Nat(nil).Mul(a, b)
		assertNat(t, fmt.Sprintf("%dx%d", sh[0], sh[1]), DivExact(u, b), toBig(a))
	}
	for _, d := range []Word{1, 3, 6, 7, 24, M} {
		a := randNat(r, 9)
		u := Nat(nil).MulAddWW(a, d, 0)
		assertNat(t, fmt.Sprintf("word %d", d), DivExactWord(u, d), toBig(a))
	}
}

func TestDivProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 80
	properties := gopter.NewProperties(parameters)

	properties.Property("q*v + r == u and r < v", prop.ForAll(
		func(u, v Nat) bool {
			if len(v) == 0 {
				return true
			}
			for _, alg := range divAlgorithms {
				q, r := DivWith(alg, u, v)
				if r.Cmp(v) >= 0 {
					return false
				}
				back := Nat(nil).Mul(q, v)
				back = back.Add(back, r)
				if back.Cmp(u) != 0 {
					t.Logf("%v: %d/%d limbs", alg, len(u), len(v))
					return false
				}
			}
			return true
		},
		genNat(60), genNat(30),
	))
	properties.Property("exact division inverts multiplication", prop.ForAll(
		func(a, b Nat) bool {
			if len(b) == 0 {
				return true
			}
			return DivExact(Nat(nil).Mul(a, b), b).Cmp(a) == 0
		},
		genNat(40), genNat(20),
	))

	properties.TestingRun(t)
}

func FuzzDivMod(f *testing.F) {
	f.Add([]byte{100}, []byte{7})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, []byte{0x80, 0, 0, 0, 0, 0, 0, 0, 1})
	f.Fuzz(func(t *testing.T, a, b []byte) {
		if len(a) > 8192 || len(b) > 4096 {
			t.Skip()
		}
		u, v := natFromBytes(a), natFromBytes(b)
		if len(v) == 0 {
			return
		}
		for _, alg := range divAlgorithms {
			q, r := DivWith(alg, u, v)
			checkDivMod(t, alg.String(), u, v, q, r)
		}
	})
}

func BenchmarkDivMod(b *testing.B) {
	r := newRand(24)
	for _, n := range []int{32, 128, 512} {
		u, v := randNat(r, 2*n), randNat(r, n)
		for _, alg := range divAlgorithms {
			b.Run(fmt.Sprintf("%v/limbs=%d", alg, n), func(b *testing.B) {
				for b.Loop() {
					DivWith(alg, u, v)
				}
			})
		}
	}
}
