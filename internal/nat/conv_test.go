package nat

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
)

func TestTextMatchesBigInt(t *testing.T) {
	t.Parallel()
	r := newRand(40)
	for _, n := range []int{0, 1, 2, 5, 31, 64, 200} {
		x := randNat(r, n)
		for _, base := range []int{2, 8, 10, 16, 36} {
			if got, want := x.Text(base), toBig(x).Text(base); got != want {
				t.Fatalf("Text(%d) of %d limbs = %q, want %q", base, n, got, want)
			}
		}
	}
}

// TestTextDivideAndConquer lowers the split threshold so that every
// recursion level runs on modest inputs, including values whose low halves
// carry leading zeros.
func TestTextDivideAndConquer(t *testing.T) {
	th := config.DefaultThresholds()
	th.ToStringDivideAndConquer = 2
	withThresholds(t, th)

	r := newRand(41)
	ten := big.NewInt(10)
	for _, n := range []int{2, 3, 9, 40, 150} {
		x := randNat(r, n)
		if got, want := x.String(), toBig(x).String(); got != want {
			t.Fatalf("%d limbs: got %q, want %q", n, got, want)
		}
		// 10^k + 1 has a run of zeros spanning the split points.
		p := new(big.Int).Exp(ten, big.NewInt(int64(n*20)), nil)
		p.Add(p, big.NewInt(1))
		if got := fromBig(p).String(); got != p.String() {
			t.Fatalf("10^%d+1: got %q", n*20, got)
		}
		back, err := Parse(p.String(), 10)
		if err != nil {
			t.Fatal(err)
		}
		assertNat(t, "parse", back, p)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		s    string
		base int
		want string
	}{
		{"0", 10, "0"},
		{"000123", 10, "123"},
		{"ff", 16, "255"},
		{"FF", 16, "255"},
		{"zz", 36, "1295"},
		{"18446744073709551616", 10, "18446744073709551616"},
		{strings.Repeat("9", 500), 10, strings.Repeat("9", 500)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.s, tt.base)
		if err != nil {
			t.Errorf("Parse(%q, %d): %v", tt.s, tt.base, err)
			continue
		}
		if !got.IsNormalized() {
			t.Errorf("Parse(%q) not normalized", tt.s)
		}
		if s := got.String(); s != tt.want {
			t.Errorf("Parse(%q, %d) = %s, want %s", tt.s, tt.base, s, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		s    string
		base int
	}{
		{"", 10},
		{"12a", 10},
		{"-1", 10},
		{"1_000", 10},
		{"zz!", 36},
		{"zz", 35},
		{"2", 2},
		{"1", 1},
		{"1", 37},
	} {
		if _, err := Parse(tc.s, tc.base); !errors.Is(err, apperrors.ErrSyntax) {
			t.Errorf("Parse(%q, %d) error = %v, want syntax error", tc.s, tc.base, err)
		}
	}
}

func TestTextParseRoundTrip(t *testing.T) {
	t.Parallel()
	r := newRand(42)
	for i := range 20 {
		x := randNat(r, i*7)
		for _, base := range []int{3, 10, 16} {
			back, err := Parse(x.Text(base), base)
			if err != nil {
				t.Fatal(err)
			}
			if back.Cmp(x) != 0 {
				t.Fatalf("round trip failed in base %d for %d limbs", base, len(x))
			}
		}
	}
}

func FuzzParse(f *testing.F) {
	f.Add("0")
	f.Add("123456789012345678901234567890")
	f.Add("00x")
	f.Fuzz(func(t *testing.T, s string) {
		if len(s) > 2000 {
			t.Skip()
		}
		got, err := Parse(s, 10)
		want, ok := new(big.Int).SetString(s, 10)
		valid := ok && s != "" && strings.Trim(s, "0123456789") == ""
		if (err == nil) != valid {
			t.Fatalf("Parse(%q) error = %v, math/big ok = %v", s, err, ok)
		}
		if err == nil {
			assertNat(t, fmt.Sprintf("Parse(%q)", s), got, want)
		}
	})
}
