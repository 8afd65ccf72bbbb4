package utils

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestBigIntConversionRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bound := new(big.Int).Lsh(big.NewInt(1), 384)
	for i := 0; i < 1000; i++ {
		x := new(big.Int).Rand(rng, bound)
		arr := BigIntToUIntArray(x)
		back := UIntarrayToInt(&arr)
		if back.Cmp(x) != 0 {
			t.Fatalf("roundtrip failed for %v, got %v", x, back)
		}
	}
	// word order is low-endian
	arr := BigIntToUIntArray(big.NewInt(5))
	if arr != [6]uint64{5, 0, 0, 0, 0, 0} {
		t.Fatalf("unexpected word order %v", arr)
	}
	top := new(big.Int).Lsh(big.NewInt(1), 383)
	arr = BigIntToUIntArray(top)
	if arr != [6]uint64{0, 0, 0, 0, 0, 1 << 63} {
		t.Fatalf("unexpected top word %v", arr)
	}
}

func TestBigIntToUIntArrayPanics(t *testing.T) {
	checkPanics := func(x *big.Int) (didPanic bool) {
		defer func() {
			if recover() != nil {
				didPanic = true
			}
		}()
		BigIntToUIntArray(x)
		return
	}
	if !checkPanics(big.NewInt(-1)) {
		t.Fatal("negative input accepted")
	}
	if !checkPanics(new(big.Int).Lsh(big.NewInt(1), 384)) {
		t.Fatal("2^384 accepted")
	}
}

func TestInitIntFromString(t *testing.T) {
	if InitIntFromString("0x10").Int64() != 16 {
		t.Fatal("hex literal misparsed")
	}
	if InitIntFromString("1_000").Int64() != 1000 {
		t.Fatal("decimal literal with separators misparsed")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("malformed literal did not panic")
		}
	}()
	InitIntFromString("0xzz")
}
