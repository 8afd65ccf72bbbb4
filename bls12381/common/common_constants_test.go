package common

import (
	"math/big"
	"testing"
)

func TestBaseFieldSizeIsPrime(t *testing.T) {
	if !BaseFieldSize_Int.ProbablyPrime(20) {
		t.Fatal("BaseFieldSize is not prime")
	}
	if BaseFieldSize_Int.Cmp(TwoTo384_Int) >= 0 {
		t.Fatal("BaseFieldSize does not fit into 384 bits")
	}
}

func TestMontgomeryNPrime(t *testing.T) {
	twoTo64 := new(big.Int).Lsh(big.NewInt(1), 64)
	inv := new(big.Int).ModInverse(BaseFieldSize_Int, twoTo64)
	inv.Neg(inv)
	inv.Mod(inv, twoTo64)
	if inv.Uint64() != MontgomeryNPrime {
		t.Fatalf("MontgomeryNPrime is wrong; expected %x", inv)
	}
}

func TestByteLength(t *testing.T) {
	if BaseFieldByteLength != 48 || MontgomeryBitLength != 384 {
		t.Fatal("unexpected derived lengths")
	}
}
