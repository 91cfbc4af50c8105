package bigfft

import "github.com/agbru/bignum/internal/arith"

// _W is the limb width in bits.
const _W = arith.W

type nat []arith.Word

// Thin aliases keep the transform code close to its textbook form.
func addVV(z, x, y []arith.Word) arith.Word            { return arith.AddVV(z, x, y) }
func subVV(z, x, y []arith.Word) arith.Word            { return arith.SubVV(z, x, y) }
func addVW(z, x []arith.Word, y arith.Word) arith.Word { return arith.AddVW(z, x, y) }
func subVW(z, x []arith.Word, y arith.Word) arith.Word { return arith.SubVW(z, x, y) }
func shlVU(z, x []arith.Word, s uint) arith.Word       { return arith.ShlVU(z, x, s) }
func addMulVVW(z, x []arith.Word, y arith.Word) arith.Word {
	return arith.AddMulVVW(z, x, y)
}

func trim(n nat) nat {
	for i := range n {
		if n[len(n)-1-i] != 0 {
			return n[:len(n)-i]
		}
	}
	return nil
}
