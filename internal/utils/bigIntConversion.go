package utils

import (
	"encoding/binary"
	"math/big"
)

const ErrorPrefix = "mont381 / internal / utils: "

// limbs is the number of 64-bit words of the arrays handled here.
const limbs = 6

// UIntarrayToInt converts a low-endian [6]uint64 array to big.Int, without any Montgomery conversions
func UIntarrayToInt(z *[limbs]uint64) *big.Int {
	var big_endian_byte_slice [8 * limbs]byte
	for i := 0; i < limbs; i++ {
		binary.BigEndian.PutUint64(big_endian_byte_slice[8*(limbs-1-i):8*(limbs-i)], z[i])
	}
	return new(big.Int).SetBytes(big_endian_byte_slice[:])
}

// BigIntToUIntArray converts a big.Int to a low-endian [6]uint64 array without Montgomery conversions.
// We assume 0 <= x < 2^384
func BigIntToUIntArray(x *big.Int) (result [limbs]uint64) {
	// As this is an internal function, panic is OK for error handling.
	if x.Sign() < 0 {
		panic(ErrorPrefix + "bigIntToUIntArray: Trying to convert negative big Int")
	}
	if x.BitLen() > 64*limbs {
		panic(ErrorPrefix + "bigIntToUIntArray: big Int too large to fit into 48 bytes.")
	}
	var big_endian_byte_slice [8 * limbs]byte
	x.FillBytes(big_endian_byte_slice[:])
	for i := 0; i < limbs; i++ {
		result[i] = binary.BigEndian.Uint64(big_endian_byte_slice[8*(limbs-1-i) : 8*(limbs-i)])
	}
	return
}

// InitIntFromString initializes a big.Int from a given string similar to [big.Int.SetString] with base 0.
// It panics on malformed input, so it is only meant for package-level initialization of constants.
func InitIntFromString(input string) *big.Int {
	ret, success := new(big.Int).SetString(input, 0)
	if !success {
		panic(ErrorPrefix + "String used for initialization of big.Int not recognized as a valid number: " + input)
	}
	return ret
}
