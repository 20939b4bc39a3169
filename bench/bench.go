package bench

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-rsqrt/rsqrt"
)

// ErrInvalidRange is returned by Run for a range that would not terminate.
var ErrInvalidRange = errors.New("invalid range")

// Sample is one measured input.
type Sample struct {
	F float32

	Reference      float32
	ReferenceTicks int64

	Approx      float32
	ApproxTicks int64

	// Diff is Reference - Approx in float32.
	Diff float32
}

// Driver runs the measurement loop.
type Driver struct {
	cfg         Config
	results     *bufio.Writer
	diagnostics *bufio.Writer
}

// New creates a Driver writing to results and diagnostics.
func New(results, diagnostics io.Writer, opts ...Option) *Driver {
	return &Driver{
		cfg:         ApplyOptions(opts...),
		results:     bufio.NewWriter(results),
		diagnostics: bufio.NewWriter(diagnostics),
	}
}

// Run measures the default range with the monotonic clock.
func Run(results, diagnostics io.Writer) error {
	return New(results, diagnostics).Run()
}

// Config returns the driver's effective configuration.
func (d *Driver) Config() Config {
	return d.cfg
}

// Measure times one reference call and one approximation call for f.
func (d *Driver) Measure(f float32) Sample {
	clock := d.cfg.Clock

	t := clock.Now()
	ref := rsqrt.Reference(f)
	refTicks := clock.Now() - t

	t = clock.Now()
	approx := rsqrt.Approx(f)
	approxTicks := clock.Now() - t

	return Sample{
		F:              f,
		Reference:      ref,
		ReferenceTicks: refTicks,
		Approx:         approx,
		ApproxTicks:    approxTicks,
		Diff:           ref - approx,
	}
}

// Run measures every input of the configured range in increasing order
// and flushes both streams. It stops at the first write error.
func (d *Driver) Run() error {
	if !validRange(d.cfg.Start, d.cfg.Stop, d.cfg.Step) {
		return fmt.Errorf("bench: %w: start=%v stop=%v step=%v",
			ErrInvalidRange, d.cfg.Start, d.cfg.Stop, d.cfg.Step)
	}
	for f := d.cfg.Start; f < d.cfg.Stop; f += d.cfg.Step {
		s := d.Measure(f)

		if err := WriteResult(d.results, s); err != nil {
			return fmt.Errorf("bench: write results for f=%v: %w", f, err)
		}
		if err := WriteDiagnostics(d.diagnostics, s); err != nil {
			return fmt.Errorf("bench: write diagnostics for f=%v: %w", f, err)
		}

		if d.cfg.Observer != nil {
			d.cfg.Observer(s)
		}
	}

	if err := d.results.Flush(); err != nil {
		return fmt.Errorf("bench: flush results: %w", err)
	}
	if err := d.diagnostics.Flush(); err != nil {
		return fmt.Errorf("bench: flush diagnostics: %w", err)
	}
	return nil
}

// WriteResult writes the results line of s.
func WriteResult(w io.Writer, s Sample) error {
	_, err := fmt.Fprintf(w, "%f %f %f %f\n", s.F, s.Reference, s.Approx, s.Diff)
	return err
}

// WriteDiagnostics writes the diagnostics line of s.
func WriteDiagnostics(w io.Writer, s Sample) error {
	_, err := fmt.Fprintf(w, "%d %d\n", s.ReferenceTicks, s.ApproxTicks)
	return err
}
