package oracle

import (
	"context"
	"errors"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/agbru/bignum/internal/arith"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/nat"
	"github.com/agbru/bignum/internal/oracle/mocks"
)

func randNat(r *rand.Rand, n int) nat.Nat {
	z := make(nat.Nat, n)
	for i := range z {
		z[i] = arith.Word(r.Uint64())
	}
	if n > 0 && z[n-1] == 0 {
		z[n-1] = 1
	}
	return z
}

func randCases(seed uint64, sizes ...int) []Case {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	cases := make([]Case, 0, len(sizes))
	for _, n := range sizes {
		cases = append(cases, Case{X: randNat(r, n), Y: randNat(r, max(n/2, 1))})
	}
	return cases
}

func TestBytesRoundTrip(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, 2, 5, 17} {
		x := randNat(r, n)
		buf := toBytes(x)
		if want := ToBig(x).Bytes(); new(big.Int).SetBytes(buf).Cmp(new(big.Int).SetBytes(want)) != 0 {
			t.Fatalf("toBytes(%d limbs) disagrees with big.Int.Bytes", n)
		}
		if diff := cmp.Diff(x, fromBytes(buf)); diff != "" {
			t.Errorf("round trip of %d limbs (-want +got):\n%s", n, diff)
		}
	}
	if got := fromBytes([]byte{0, 0, 0, 1}); !cmp.Equal(got, nat.Nat{1}) {
		t.Errorf("leading zeros: got %v", got)
	}
}

func TestBigOracle(t *testing.T) {
	t.Parallel()
	x, y := nat.Nat{12}, nat.Nat{18}
	o := Big{}
	if got := o.GCD(x, y); !cmp.Equal(got, nat.Nat{6}) {
		t.Errorf("GCD = %v", got)
	}
	q, r := o.DivMod(nat.Nat{17}, nat.Nat{5})
	if !cmp.Equal(q, nat.Nat{3}) || !cmp.Equal(r, nat.Nat{2}) {
		t.Errorf("DivMod = %v, %v", q, r)
	}
	if got := o.Mul(nat.Nat{0}.Norm(), y); len(got) != 0 {
		t.Errorf("0*y = %v", got)
	}
}

func TestAvailable(t *testing.T) {
	t.Parallel()
	all := Available()
	if len(all) == 0 || all[0].Name() != "math/big" {
		t.Fatalf("Available() = %v", all)
	}
	if Strongest() == nil {
		t.Fatal("Strongest() = nil")
	}
}

func TestCheckerAgreesWithBig(t *testing.T) {
	t.Parallel()
	cases := randCases(7, 1, 3, 10, 40, 90)
	tests := []struct {
		op    string
		check Check
		algs  []nat.Algorithm
	}{
		{"mul", CheckMul, nat.MulAlgorithms},
		{"sqr", CheckSqr, nat.MulAlgorithms},
		{"div", CheckDiv, []nat.Algorithm{nat.DivBasecase, nat.DivNewton}},
		{"gcd", CheckGCD, []nat.Algorithm{nat.GCDBinary, nat.GCDLehmer}},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			t.Parallel()
			ck := Checker{Oracle: Big{}, Op: tt.op, Check: tt.check, Limit: 4}
			if err := ck.Run(context.Background(), tt.algs, cases); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCheckerReportsMismatch(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	o := mocks.NewMockOracle(ctrl)
	o.EXPECT().Name().Return("broken").AnyTimes()
	o.EXPECT().Mul(gomock.Any(), gomock.Any()).Return(nat.Nat{42}).AnyTimes()

	ck := Checker{Oracle: o, Op: "mul", Check: CheckMul, Limit: 1}
	err := ck.Run(context.Background(), []nat.Algorithm{nat.Basecase}, randCases(3, 4))

	var mm apperrors.MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
	if mm.Operation != "mul" || mm.Left != "basecase" || mm.Right != "broken" || mm.Limbs != 4 {
		t.Errorf("unexpected mismatch %+v", mm)
	}
}

func TestCheckerCanceled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	o := mocks.NewMockOracle(ctrl)
	o.EXPECT().Name().Return("unused").AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ck := Checker{Oracle: o, Op: "mul", Check: CheckMul}
	err := ck.Run(ctx, []nat.Algorithm{nat.Basecase}, randCases(5, 2, 2))
	if !apperrors.IsContextError(err) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestCheckDivSkipsZeroDivisor(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	o := mocks.NewMockOracle(ctrl)
	if d := CheckDiv(o, nat.DivBasecase, Case{X: nat.Nat{1}}); d != "" {
		t.Errorf("CheckDiv with zero divisor = %q", d)
	}
}
