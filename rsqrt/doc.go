// Package rsqrt approximates the reciprocal square root 1/√x of a
// float32 with the magic-constant bit trick followed by a single
// Newton-Raphson step.
//
// The initial guess treats the IEEE-754 single-precision encoding
// (1 sign bit, 8 exponent bits, 23 mantissa bits) as a scaled logarithm:
// halving the integer view of x and subtracting it from MagicConstant
// approximates log2(1/√x) = -0.5·log2(x) directly on the bits. The guess
// is off by a few percent; one refinement step brings the relative error
// below MaxRelativeError for normal positive inputs.
//
// # Usage
//
//	y := rsqrt.Approx(4)      // ≈ 0.49915
//	r := rsqrt.Reference(4)   // 0.5
//	e := rsqrt.RelativeError(y, r)
//
// # Unsupported inputs
//
// Zero, negative, infinite and NaN inputs are not supported. Approx still
// returns a deterministic value for them (whatever the bit arithmetic
// yields), but the value carries no meaning.
package rsqrt
