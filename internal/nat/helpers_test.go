package nat

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/agbru/bignum/internal/config"
)

func toBig(x Nat) *big.Int {
	words := make([]big.Word, len(x))
	for i, w := range x {
		words[i] = big.Word(w)
	}
	return new(big.Int).SetBits(words)
}

func fromBig(x *big.Int) Nat {
	bits := x.Bits()
	z := make(Nat, len(bits))
	for i, w := range bits {
		z[i] = Word(w)
	}
	return z.Norm()
}

// randNat returns a normalized n-limb value.
func randNat(r *rand.Rand, n int) Nat {
	if n == 0 {
		return nil
	}
	z := make(Nat, n)
	for i := range z {
		z[i] = Word(r.Uint64())
	}
	if z[n-1] == 0 {
		z[n-1] = 1
	}
	return z
}

// onesNat returns the n-limb value with every bit set, which maximises
// carry propagation.
func onesNat(n int) Nat {
	z := make(Nat, n)
	for i := range z {
		z[i] = M
	}
	return z
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// withThresholds installs t for the duration of the test. Tests that call
// it must not run in parallel with each other.
func withThresholds(t *testing.T, th config.Thresholds) {
	t.Helper()
	prev, err := SetThresholds(th)
	if err != nil {
		t.Fatalf("SetThresholds: %v", err)
	}
	t.Cleanup(func() {
		if _, err := SetThresholds(prev); err != nil {
			t.Errorf("restore thresholds: %v", err)
		}
	})
}

func assertNat(t *testing.T, what string, got Nat, want *big.Int) {
	t.Helper()
	if !got.IsNormalized() {
		t.Fatalf("%s: result not normalized: %v", what, []Word(got))
	}
	if toBig(got).Cmp(want) != 0 {
		t.Fatalf("%s: got %s, want %s", what, toBig(got), want)
	}
}
