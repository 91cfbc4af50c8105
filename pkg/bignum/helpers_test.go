package bignum

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/require"
)

func bigOf(x Natural) *big.Int {
	b, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic("bad natural text " + x.String())
	}
	return b
}

func bigOfInt(x Integer) *big.Int {
	b, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic("bad integer text " + x.String())
	}
	return b
}

func mustNat(t testing.TB, s string) Natural {
	t.Helper()
	n, err := ParseNatural(s)
	require.NoError(t, err)
	return n
}

func mustInt(t testing.TB, s string) Integer {
	t.Helper()
	n, err := ParseInteger(s)
	require.NoError(t, err)
	return n
}

func mustRat(t testing.TB, s string) Rational {
	t.Helper()
	r, err := ParseRational(s)
	require.NoError(t, err)
	return r
}

// genNatural produces Naturals from zero up to a few hundred bits, biased
// toward the single-word boundary where representation changes.
func genNatural() gopter.Gen {
	return gen.SliceOfN(6, gen.UInt64()).Map(func(ws []uint64) Natural {
		x := NaturalFromUint64(ws[0] % 7)
		for _, w := range ws[1 : 1+int(ws[0]%5)] {
			x = x.Lsh(64).Add(NaturalFromUint64(w))
		}
		return x
	})
}

func genInteger() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), genNatural()).Map(func(v []any) Integer {
		return integer(v[0].(bool), v[1].(Natural))
	})
}

func genRational() gopter.Gen {
	return gopter.CombineGens(genInteger(), genNatural()).Map(func(v []any) Rational {
		den := v[1].(Natural).Add(NaturalFromWord(1))
		r, err := NewRational(v[0].(Integer), IntegerFromNatural(den))
		if err != nil {
			panic(err)
		}
		return r
	})
}
