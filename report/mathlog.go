//go:build !fastmath

package report

import "math"

// mathLog2 computes log2(x) using standard library math.
func mathLog2(x float64) float64 {
	return math.Log2(x)
}
