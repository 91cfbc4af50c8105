package metrics

import (
	"testing"

	"github.com/agbru/bignum/internal/nat"
)

func TestReadMemory(t *testing.T) {
	t.Parallel()

	snap := ReadMemory()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.TotalAlloc < snap.HeapAlloc {
		t.Error("TotalAlloc should not be below HeapAlloc")
	}
}

func TestMemorySnapshot_Since(t *testing.T) {
	t.Parallel()

	before := ReadMemory()
	var sink nat.Nat
	for range 16 {
		sink = nat.Nat(nil).Mul(nat.Nat{1, 2, 3, 4}, nat.Nat{5, 6, 7, 8})
	}
	_ = sink
	d := ReadMemory().Since(before)

	// Other tests may allocate concurrently, so only a lower bound holds.
	if d.Bytes == 0 || d.Objects == 0 {
		t.Errorf("expected allocations, got %+v", d)
	}
	per := d.PerOp(16)
	if per.Bytes > d.Bytes {
		t.Errorf("PerOp grew: %+v > %+v", per, d)
	}
}

func TestAllocDelta_PerOpZero(t *testing.T) {
	t.Parallel()

	d := AllocDelta{Bytes: 10, Objects: 2}
	if got := d.PerOp(0); got != d {
		t.Errorf("PerOp(0) = %+v, want %+v", got, d)
	}
}
