package rsqrt

import "math"

// MagicConstant is subtracted from the halved integer view of x to form
// the initial guess.
const MagicConstant int32 = 0x5F3759DF

// MaxRelativeError bounds |Approx(x)-Reference(x)| / Reference(x) for
// integral x in [1, 9999]. The observed worst case is about 1.75e-3.
const MaxRelativeError = 2e-3

const threeHalfs float32 = 1.5

// Bits returns the IEEE-754 bit pattern of x viewed as a signed 32-bit
// integer. It is a reinterpretation, not a numeric conversion.
func Bits(x float32) int32 {
	return int32(math.Float32bits(x))
}

// FromBits is the inverse of Bits.
func FromBits(i int32) float32 {
	return math.Float32frombits(uint32(i))
}

// MagicStep computes MagicConstant - (i >> 1) with an arithmetic shift and
// two's-complement wraparound.
func MagicStep(i int32) int32 {
	return MagicConstant - (i >> 1)
}

// InitialGuess returns the unrefined bit-trick estimate of 1/√x.
func InitialGuess(x float32) float32 {
	return FromBits(MagicStep(Bits(x)))
}

// Refine applies one Newton-Raphson iteration for f(y) = 1/y² - x to the
// estimate y.
func Refine(x, y float32) float32 {
	halfX := x * 0.5
	// The product is rounded to float32 before the subtraction; it must
	// not be fused into an FMA.
	p := float32(halfX * y * y)
	return y * (threeHalfs - p)
}

// Approx returns an approximation of 1/√x for positive, finite x.
func Approx(x float32) float32 {
	return Refine(x, InitialGuess(x))
}

// Reference returns 1/√x evaluated in double precision and rounded to
// float32.
func Reference(x float32) float32 {
	return float32(1 / math.Sqrt(float64(x)))
}

// RelativeError returns |approx-ref| / |ref| in double precision.
func RelativeError(approx, ref float32) float64 {
	return math.Abs(float64(approx)-float64(ref)) / math.Abs(float64(ref))
}
