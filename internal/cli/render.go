package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-rsqrt/internal/bitfmt"
	"github.com/cwbudde/algo-rsqrt/report"
	"github.com/cwbudde/algo-rsqrt/rsqrt"
)

type tickView struct {
	Total  float64 `yaml:"total"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Min    int64   `yaml:"min"`
	Max    int64   `yaml:"max"`
	Zeros  int     `yaml:"zeros"`
}

// summaryView is the rendered form shared by the text and YAML outputs.
type summaryView struct {
	Samples         int       `yaml:"samples"`
	MaxAbsDiff      float64   `yaml:"max_abs_diff"`
	RMSDiff         float64   `yaml:"rms_diff"`
	MaxRelError     float64   `yaml:"max_rel_error"`
	MaxRelErrorAt   float64   `yaml:"max_rel_error_at"`
	MeanRelError    float64   `yaml:"mean_rel_error"`
	PrecisionBits   float64   `yaml:"precision_bits"`
	Tolerance       float64   `yaml:"tolerance"`
	WithinTolerance bool      `yaml:"within_tolerance"`
	Reference       *tickView `yaml:"reference_ticks,omitempty"`
	Approx          *tickView `yaml:"approx_ticks,omitempty"`
	Speedup         float64   `yaml:"speedup,omitempty"`
	MagicConstant   string    `yaml:"magic_constant"`
	MagicBits       string    `yaml:"magic_bits"`
	Host            hostInfo  `yaml:"host"`
}

func newTickView(s report.TickStats) *tickView {
	return &tickView{
		Total:  s.Total,
		Mean:   s.Mean,
		StdDev: s.StdDev,
		Min:    s.Min,
		Max:    s.Max,
		Zeros:  s.Zeros,
	}
}

func newSummaryView(s report.Summary, tol float64, host hostInfo) summaryView {
	v := summaryView{
		Samples:         s.Samples,
		MaxAbsDiff:      s.MaxAbsDiff,
		RMSDiff:         s.RMSDiff,
		MaxRelError:     s.MaxRelError,
		MaxRelErrorAt:   s.MaxRelErrorAt,
		MeanRelError:    s.MeanRelError,
		PrecisionBits:   s.PrecisionBits,
		Tolerance:       tol,
		WithinTolerance: s.Within(tol),
		Speedup:         s.Speedup,
		MagicConstant:   fmt.Sprintf("0x%08X", rsqrt.MagicConstant),
		MagicBits:       bitfmt.Grouped(bitfmt.Digits(rsqrt.MagicConstant), 4, "_"),
		Host:            host,
	}
	if s.Reference.Length > 0 {
		v.Reference = newTickView(s.Reference)
		v.Approx = newTickView(s.Approx)
	}
	return v
}

func renderYAML(w io.Writer, v summaryView) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func renderText(w io.Writer, v summaryView) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	status := "ok"
	if !v.WithinTolerance {
		status = "EXCEEDED"
	}

	rows := []string{
		fmt.Sprintf("Samples\t%s", p.Sprintf("%d", v.Samples)),
		fmt.Sprintf("Max |diff|\t%.4e", v.MaxAbsDiff),
		fmt.Sprintf("RMS diff\t%.4e", v.RMSDiff),
		fmt.Sprintf("Max rel error\t%.4e (f = %g)", v.MaxRelError, v.MaxRelErrorAt),
		fmt.Sprintf("Mean rel error\t%.4e", v.MeanRelError),
		fmt.Sprintf("Precision\t%.2f bits", v.PrecisionBits),
		fmt.Sprintf("Tolerance\t%.4e %s", v.Tolerance, status),
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return err
		}
	}

	if v.Reference != nil {
		if _, err := fmt.Fprintf(tw, "\nTicks\tTotal\tMean\tStdDev\tMin\tMax\tZeros\n"); err != nil {
			return err
		}
		for _, r := range []struct {
			name string
			t    *tickView
		}{{"Reference", v.Reference}, {"Approx", v.Approx}} {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%s\t%s\t%s\n",
				r.name,
				p.Sprintf("%.0f", r.t.Total),
				r.t.Mean,
				r.t.StdDev,
				p.Sprintf("%d", r.t.Min),
				p.Sprintf("%d", r.t.Max),
				p.Sprintf("%d", r.t.Zeros),
			); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(tw, "Speedup\t%.2fx\n", v.Speedup); err != nil {
			return err
		}
	}

	simd := "none"
	if len(v.Host.SIMD) > 0 {
		simd = strings.Join(v.Host.SIMD, " ")
	}
	if _, err := fmt.Fprintf(tw, "\nMagic\t%s\t%s\nHost\t%s\t%s\n",
		v.MagicConstant, v.MagicBits, v.Host.Arch, simd); err != nil {
		return err
	}

	return tw.Flush()
}
