package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrNoSamples is returned by Summarize for an empty results stream.
	ErrNoSamples = errors.New("report: no samples")

	// ErrLengthMismatch is returned when the two streams are not
	// index-aligned.
	ErrLengthMismatch = errors.New("report: results and diagnostics differ in length")
)

// Summary aggregates a measurement run.
type Summary struct {
	Samples int

	MaxAbsDiff float64
	RMSDiff    float64

	// Relative errors are rebuilt from the six-decimal %f fields of the
	// results stream. Near f=9999 the reference is about 0.01, so the
	// figures are quantised to roughly 1e-4 relative and MaxRelErrorAt
	// can differ from the input with the true worst error. A NaN field
	// counts as an infinite error.
	MaxRelError   float64
	MaxRelErrorAt float64 // input with the worst relative error
	MeanRelError  float64

	// PrecisionBits is -log2(MaxRelError), the number of correct
	// leading bits in the worst case.
	PrecisionBits float64

	// Timing figures are zero when no diagnostics were supplied.
	Reference TickStats
	Approx    TickStats

	// Speedup is Reference.Total / Approx.Total.
	Speedup float64
}

// Summarize computes a Summary. timings may be empty; otherwise it must
// have one record per value.
func Summarize(values []ValueRecord, timings []TimingRecord) (Summary, error) {
	n := len(values)
	if n == 0 {
		return Summary{}, ErrNoSamples
	}
	if len(timings) > 0 && len(timings) != n {
		return Summary{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(timings))
	}

	diffs := make([]float64, n)
	rel := make([]float64, n)
	worst, worstAt := 0.0, values[0].F
	for i, v := range values {
		diffs[i] = v.Diff
		rel[i] = relativeError(v.Diff, v.Reference)
		if rel[i] > worst {
			worst, worstAt = rel[i], v.F
		}
	}

	s := Summary{
		Samples:       n,
		MaxAbsDiff:    vecmath.MaxAbs(diffs),
		RMSDiff:       math.Sqrt(vecmath.DotProduct(diffs, diffs) / float64(n)),
		MaxRelError:   worst,
		MaxRelErrorAt: worstAt,
		MeanRelError:  vecmath.Sum(rel) / float64(n),
		PrecisionBits: precisionBits(worst),
	}

	if len(timings) > 0 {
		refTicks := make([]int64, n)
		approxTicks := make([]int64, n)
		for i, t := range timings {
			refTicks[i] = t.ReferenceTicks
			approxTicks[i] = t.ApproxTicks
		}
		s.Reference = CalculateTicks(refTicks)
		s.Approx = CalculateTicks(approxTicks)
		if s.Approx.Total > 0 {
			s.Speedup = s.Reference.Total / s.Approx.Total
		}
	}

	return s, nil
}

// Within reports whether the worst relative error is below tol.
func (s Summary) Within(tol float64) bool {
	return s.MaxRelError < tol
}

func relativeError(diff, ref float64) float64 {
	switch {
	case math.IsNaN(diff) || math.IsNaN(ref):
		return math.Inf(1)
	case diff == 0:
		return 0
	case ref == 0:
		return math.Inf(1)
	}
	return math.Abs(diff) / math.Abs(ref)
}

func precisionBits(rel float64) float64 {
	if rel == 0 {
		return math.Inf(1)
	}
	return -mathLog2(rel)
}
