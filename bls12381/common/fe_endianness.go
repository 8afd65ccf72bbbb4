package common

import "encoding/binary"

// FieldElementEndianness is a wrapper around binary.ByteOrder, restricted to binary.LittleEndian and binary.BigEndian.
// Trying to set any other value will panic.
//
// It determines the byte order of 48-byte encodings of six-word field elements.
// The reason for the restriction is that binary.ByteOrder lacks any general way to meaningfully extend it to 384-bit ints.
type FieldElementEndianness struct {
	byteOrder binary.ByteOrder
}

// Predefined values. The usual text representation of BLS12-381 field elements (and our test vectors) is big-endian.
var (
	BigEndian    = FieldElementEndianness{byteOrder: binary.BigEndian}
	LittleEndian = FieldElementEndianness{byteOrder: binary.LittleEndian}
)

// DefaultEndian is the byte order used by the command-line tooling unless overridden.
var DefaultEndian = BigEndian

// GetEndianness unwraps FieldElementEndianness to binary.ByteOrder
func (s FieldElementEndianness) GetEndianness() binary.ByteOrder {
	return s.byteOrder
}

// SetEndianness sets FieldElementEndianess by wrapping e. We only accept binary.LittleEndian or binary.BigEndian.
func (s *FieldElementEndianness) SetEndianness(e binary.ByteOrder) {
	s.byteOrder = e
	s.Validate()
}

// Validate panics unless s wraps binary.BigEndian or binary.LittleEndian.
func (s FieldElementEndianness) Validate() {
	if s.byteOrder == nil {
		panic("mont381 / common: FieldElementEndianness wraps a nil binary.ByteOrder")
	}
	if s.byteOrder != binary.BigEndian && s.byteOrder != binary.LittleEndian {
		panic("mont381 / common: we only support binary.BigEndian and binary.LittleEndian from the standard library as possible endianness")
	}
}

func (s FieldElementEndianness) IsLittleEndian() bool {
	return s.byteOrder == binary.LittleEndian
}

func (s FieldElementEndianness) IsBigEndian() bool {
	return s.byteOrder == binary.BigEndian
}

func (s FieldElementEndianness) String() string {
	if s.byteOrder == nil {
		return "<unset>"
	}
	return s.byteOrder.String()
}

// PutUint384 writes the low-endian words to out[0:48] in the byte order given by s.
func (s FieldElementEndianness) PutUint384(out []byte, low_endian_words [Limbs]uint64) {
	s.Validate()
	if len(out) < 8*Limbs {
		panic("mont381 / common: PutUint384 called on a slice of insufficient length")
	}
	if s.IsBigEndian() {
		for i := 0; i < Limbs; i++ {
			s.byteOrder.PutUint64(out[i*8:(i+1)*8], low_endian_words[Limbs-1-i])
		}
	} else {
		for i := 0; i < Limbs; i++ {
			s.byteOrder.PutUint64(out[i*8:(i+1)*8], low_endian_words[i])
		}
	}
}

// Uint384 reads in[0:48] in the byte order given by s and returns the low-endian words.
func (s FieldElementEndianness) Uint384(in []byte) (ret [Limbs]uint64) {
	s.Validate()
	if len(in) < 8*Limbs {
		panic("mont381 / common: Uint384 called on a slice of insufficient length")
	}
	if s.IsBigEndian() {
		for i := 0; i < Limbs; i++ {
			ret[Limbs-1-i] = s.byteOrder.Uint64(in[i*8 : (i+1)*8])
		}
	} else {
		for i := 0; i < Limbs; i++ {
			ret[i] = s.byteOrder.Uint64(in[i*8 : (i+1)*8])
		}
	}
	return
}
