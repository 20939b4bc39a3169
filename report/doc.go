// Package report parses the two streams written by package bench and
// summarises them.
//
// A results stream holds "f reference approx difference" per line; a
// diagnostics stream holds "reference_ticks approx_ticks". Summarize
// combines both into accuracy figures (peak and RMS difference, worst
// relative error, bits of precision) and timing figures (totals, mean,
// standard deviation, speedup).
//
// # Build tags
//
// With -tags fastmath the bits-of-precision figure uses the algo-approx
// logarithm instead of math.Log2.
package report
