// Package cli implements the rsqrtstat command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rsqrt/report"
	"github.com/cwbudde/algo-rsqrt/rsqrt"
)

// Options holds the rsqrtstat flags.
type Options struct {
	Verbose   bool
	Format    string // "text" | "yaml"
	Tolerance float64
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "yaml"}

// NewRootCommand creates the rsqrtstat command.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "rsqrtstat VALUES [TIMINGS]",
		Short: "Summarise rsqrtbench output",
		Long: "Reads the results stream (and optionally the diagnostics stream) written by\n" +
			"rsqrtbench and prints accuracy and timing figures. Exits 1 when the worst\n" +
			"relative error is not below --tolerance.",
		Example: "  rsqrtbench > value_differences.txt 2> cycle_differences.txt\n" +
			"  rsqrtstat value_differences.txt cycle_differences.txt\n" +
			"  rsqrtstat --format yaml value_differences.txt",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
				return WrapExitError(ExitCommandError, "invalid arguments", err)
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !(opts.Tolerance > 0) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid tolerance %v: must be positive", opts.Tolerance))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", rsqrt.MaxRelativeError, "maximum accepted relative error")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runStat(out, errOut io.Writer, opts *Options, args []string) error {
	logger := newLogger(errOut, opts.Verbose)

	values, err := readFile(args[0], report.ParseValues)
	if err != nil {
		return WrapExitError(ExitCommandError, "read results", err)
	}
	logger.Debug("results parsed", "path", args[0], "samples", len(values))

	var timings []report.TimingRecord
	if len(args) > 1 {
		timings, err = readFile(args[1], report.ParseTimings)
		if err != nil {
			return WrapExitError(ExitCommandError, "read diagnostics", err)
		}
		logger.Debug("diagnostics parsed", "path", args[1], "samples", len(timings))
	}

	summary, err := report.Summarize(values, timings)
	if err != nil {
		return WrapExitError(ExitCommandError, "summarize", err)
	}

	view := newSummaryView(summary, opts.Tolerance, detectHost())
	switch opts.Format {
	case "yaml":
		err = renderYAML(out, view)
	default:
		err = renderText(out, view)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "write summary", err)
	}

	if !view.WithinTolerance {
		logger.Warn("tolerance exceeded",
			"max_rel_error", summary.MaxRelError,
			"at", summary.MaxRelErrorAt,
			"tolerance", opts.Tolerance)
		return NewExitError(ExitFailure,
			fmt.Sprintf("max relative error %.4g at f=%g exceeds tolerance %.4g",
				summary.MaxRelError, summary.MaxRelErrorAt, opts.Tolerance))
	}
	return nil
}

func readFile[T any](path string, parse func(io.Reader) ([]T, error)) (recs []T, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	recs, err = parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
