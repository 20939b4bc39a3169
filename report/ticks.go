package report

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// TickStats holds statistics of one column of tick counts.
type TickStats struct {
	Length   int
	Total    float64
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Min      int64
	MinPos   int
	Max      int64
	MaxPos   int
	Zeros    int // readings below clock resolution
}

// CalculateTicks computes tick statistics in a single pass using
// Welford's online algorithm for the variance.
func CalculateTicks(ticks []int64) TickStats {
	n := len(ticks)
	if n == 0 {
		return TickStats{}
	}

	var mean, m2 float64

	var (
		maxVal = ticks[0]
		maxPos int
		minVal = ticks[0]
		minPos int
		zeros  int
	)

	asFloat := make([]float64, n)
	for i, t := range ticks {
		x := float64(t)
		asFloat[i] = x

		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		if t > maxVal {
			maxVal = t
			maxPos = i
		}
		if t < minVal {
			minVal = t
			minPos = i
		}
		if t == 0 {
			zeros++
		}
	}

	variance := m2 / float64(n)

	return TickStats{
		Length:   n,
		Total:    vecmath.Sum(asFloat),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Zeros:    zeros,
	}
}
