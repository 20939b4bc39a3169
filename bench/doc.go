// Package bench measures rsqrt.Approx against rsqrt.Reference over a
// range of inputs and writes one line per sample to two streams.
//
// The results stream carries "f reference approx difference" as %f
// fields; the diagnostics stream carries "reference_ticks approx_ticks"
// as integers. Line k of both streams belongs to the same input, and
// neither stream has a header.
//
// Each clock bracket encloses exactly one call. Formatting and writing
// happen outside the brackets so the two tick counts stay comparable.
//
// # Usage
//
//	// ./rsqrtbench > value_differences.txt 2> cycle_differences.txt
//	if err := bench.Run(os.Stdout, os.Stderr); err != nil {
//	    ...
//	}
package bench
