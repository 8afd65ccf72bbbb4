// Package fieldElements implements arithmetic modulo the 381-bit prime BaseFieldSize that defines the base field of the BLS12-381 curve.
//
// Numbers are stored as [Uint384], six 64-bit words with the least significant word first.
// Multiplication uses the Montgomery representation a*R mod BaseFieldSize with R = 2^384;
// use [ToMontgomery] and [ToNormal] to convert. Addition and subtraction work on either representation.
//
// Montgomery multiplication is provided in several interchangeable implementations, called tiers (see [MontgomeryTier]).
// The package-level functions use the fastest tier available on the running machine.
//
// All functions expect reduced inputs, i.e. values in [0, BaseFieldSize), and never check this.
// None of the functions is constant-time.
//
// All functions are safe for concurrent use. They do not allocate.
package fieldElements
