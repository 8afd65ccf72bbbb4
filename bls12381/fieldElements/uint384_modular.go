package fieldElements

// This file contains modular addition and subtraction on Uint384.
//
// Both functions assume their inputs are reduced, i.e. in [0, BaseFieldSize), and then guarantee the same for the output.
// For unreduced inputs, the output is unspecified (but we never panic).
// These work equally for plain integers and for Montgomery representations, since addition commutes with multiplying by R.
//
// The final correction is a mask select, but the code is not audited for constant-time behaviour.

// Add computes out = a + b mod BaseFieldSize. Aliasing between the arguments is allowed.
func Add(out, a, b *Uint384) {
	IncrementCallCounter("AddFe")
	var sum, trial Uint384
	carry := addChain384(&sum, a, b)
	borrow := subChain384(&trial, &sum, &baseFieldSize_uint384)

	// sum < BaseFieldSize iff the trial subtraction borrowed.
	// The carry is always zero for reduced inputs (BaseFieldSize < 2^383), but a carry would mean sum >= 2^384 > BaseFieldSize.
	keepSum := borrow &^ carry
	maskSelect384(out, -keepSum, &sum, &trial)
}

// Sub computes out = a - b mod BaseFieldSize. Aliasing between the arguments is allowed.
func Sub(out, a, b *Uint384) {
	IncrementCallCounter("SubFe")
	var diff, masked Uint384
	borrow := subChain384(&diff, a, b)

	// On underflow, diff == a - b + 2^384. Subtracting 2^384 - BaseFieldSize adds BaseFieldSize modulo 2^384.
	// The second borrow is then guaranteed to be 1 and cancels the 2^384.
	maskSelect384(&masked, -borrow, &correction_uint384, &zero_uint384)
	subChain384(out, &diff, &masked)
}

// Add sets z = x + y mod BaseFieldSize.
func (z *Uint384) Add(x, y *Uint384) {
	Add(z, x, y)
}

// Sub sets z = x - y mod BaseFieldSize.
func (z *Uint384) Sub(x, y *Uint384) {
	Sub(z, x, y)
}

// Neg sets z = -x mod BaseFieldSize.
func (z *Uint384) Neg(x *Uint384) {
	Sub(z, &zero_uint384, x)
}

// Double sets z = 2*x mod BaseFieldSize.
func (z *Uint384) Double(x *Uint384) {
	Add(z, x, x)
}
