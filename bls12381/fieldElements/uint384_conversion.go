package fieldElements

import "math/big"

// This file contains the conversions between plain integers and their Montgomery representation a*R mod BaseFieldSize.
// Both directions are just a Montgomery multiplication by a constant, so they do not add any arithmetic of their own.

// ToMontgomery sets out = a*R mod BaseFieldSize, i.e. the Montgomery representation of a, using the default tier.
// a must be < BaseFieldSize.
func ToMontgomery(out *Uint384, a *[6]uint64) {
	IncrementCallCounter("ToMontgomery")
	defaultTier.ToMontgomery(out, a)
}

// ToNormal sets out = a*R^{-1} mod BaseFieldSize, i.e. the integer whose Montgomery representation is a, using the default tier.
// a must be < BaseFieldSize.
func ToNormal(out *[6]uint64, a *Uint384) {
	IncrementCallCounter("ToNormal")
	defaultTier.ToNormal(out, a)
}

// ToMontgomery is like the package-level [ToMontgomery], but uses this tier.
func (tier *MontgomeryTier) ToMontgomery(out *Uint384, a *[6]uint64) {
	tier.MulMontgomery(out, (*Uint384)(a), &rSquared_uint384)
}

// ToNormal is like the package-level [ToNormal], but uses this tier.
func (tier *MontgomeryTier) ToNormal(out *[6]uint64, a *Uint384) {
	tier.MulMontgomery((*Uint384)(out), a, &one_uint384)
}

// SetUint64 sets z to the Montgomery representation of the small integer v.
func (z *Uint384) SetUint64(v uint64) {
	ToMontgomery(z, &[6]uint64{v})
}

// FromBigInt returns the Montgomery representation of x mod BaseFieldSize. x may be negative or unreduced (big.Int's Mod is Euclidean).
func FromBigInt(x *big.Int) (ret Uint384) {
	var reduced big.Int
	reduced.Mod(x, baseFieldSize_Int)
	plain := [6]uint64(BigIntToUint384(&reduced))
	ToMontgomery(&ret, &plain)
	return
}

// ToBigIntNormal returns the integer in [0, BaseFieldSize) that z is the Montgomery representation of.
// z must be reduced.
func (z *Uint384) ToBigIntNormal() *big.Int {
	var plain Uint384
	ToNormal((*[6]uint64)(&plain), z)
	return plain.ToBigInt()
}
