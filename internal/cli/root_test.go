package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-rsqrt/bench"
	"github.com/cwbudde/algo-rsqrt/report"
)

type stepClock struct{ t int64 }

func (c *stepClock) Now() int64 {
	c.t += 4
	return c.t
}

// writeBenchFiles runs the driver over 1..1199 and stores both streams.
func writeBenchFiles(t *testing.T) (values, timings string) {
	t.Helper()

	var results, diagnostics bytes.Buffer
	err := bench.New(&results, &diagnostics,
		bench.WithClock(&stepClock{}),
		bench.WithRange(1, 1200, 1),
	).Run()
	require.NoError(t, err)

	dir := t.TempDir()
	values = filepath.Join(dir, "value_differences.txt")
	timings = filepath.Join(dir, "cycle_differences.txt")
	require.NoError(t, os.WriteFile(values, results.Bytes(), 0o644))
	require.NoError(t, os.WriteFile(timings, diagnostics.Bytes(), 0o644))
	return values, timings
}

func execute(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootText(t *testing.T) {
	values, timings := writeBenchFiles(t)

	out, _, err := execute(values, timings)
	require.NoError(t, err)

	assert.Contains(t, out, "Samples")
	assert.Contains(t, out, "1,199")
	assert.Contains(t, out, "Precision")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "Reference")
	assert.Contains(t, out, "Speedup")
	assert.Contains(t, out, "1.00x")
	assert.Contains(t, out, "0x5F3759DF")
	assert.Contains(t, out, "0101_1111_0011_0111_0101_1001_1101_1111")
}

func TestRootTextWithoutTimings(t *testing.T) {
	values, _ := writeBenchFiles(t)

	out, _, err := execute(values)
	require.NoError(t, err)

	assert.Contains(t, out, "Max rel error")
	assert.NotContains(t, out, "Speedup")
}

func TestRootYAML(t *testing.T) {
	values, timings := writeBenchFiles(t)

	out, _, err := execute("--format", "yaml", values, timings)
	require.NoError(t, err)

	var got struct {
		Samples         int     `yaml:"samples"`
		MaxRelError     float64 `yaml:"max_rel_error"`
		WithinTolerance bool    `yaml:"within_tolerance"`
		MagicConstant   string  `yaml:"magic_constant"`
		ReferenceTicks  struct {
			Total float64 `yaml:"total"`
			Mean  float64 `yaml:"mean"`
		} `yaml:"reference_ticks"`
		Speedup float64 `yaml:"speedup"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	assert.Equal(t, 1199, got.Samples)
	assert.True(t, got.WithinTolerance)
	assert.Less(t, got.MaxRelError, 2e-3)
	assert.Equal(t, "0x5F3759DF", got.MagicConstant)
	assert.InDelta(t, 4*1199, got.ReferenceTicks.Total, 1e-9)
	assert.InDelta(t, 4, got.ReferenceTicks.Mean, 1e-9)
	assert.InDelta(t, 1, got.Speedup, 1e-12)
}

func TestRootToleranceExceeded(t *testing.T) {
	values, timings := writeBenchFiles(t)

	out, stderr, err := execute("--tolerance", "1e-3", values, timings)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "EXCEEDED")
	assert.Contains(t, stderr, "tolerance exceeded")
}

func TestRootNaNResultsFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value_differences.txt")
	content := "1.000000 1.000000 0.998307 0.001693\n" +
		"2.000000 0.707107 NaN NaN\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, _, err := execute(path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "EXCEEDED")
}

func TestRootVerbose(t *testing.T) {
	values, timings := writeBenchFiles(t)

	_, stderr, err := execute("-v", values, timings)
	require.NoError(t, err)
	assert.Contains(t, stderr, "results parsed")
	assert.Contains(t, stderr, "diagnostics parsed")
}

func TestRootCommandErrors(t *testing.T) {
	values, _ := writeBenchFiles(t)

	malformed := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(malformed, []byte("1 2 3\n"), 0o644))

	short := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(short, []byte("1 1\n"), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"too many args", []string{values, values, values}},
		{"bad format", []string{"--format", "xml", values}},
		{"bad tolerance", []string{"--tolerance", "0", values}},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.txt")}},
		{"malformed results", []string{malformed}},
		{"misaligned diagnostics", []string{values, short}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}

	_, _, err := execute(malformed)
	require.ErrorIs(t, err, report.ErrMalformedLine)
	_, _, err = execute(values, short)
	require.ErrorIs(t, err, report.ErrLengthMismatch)
}

func TestDetectHost(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"})
	t.Cleanup(cpu.ResetDetection)

	h := detectHost()
	assert.Equal(t, "amd64", h.Arch)
	assert.Equal(t, []string{"SSE2", "AVX2"}, h.SIMD)

	cpu.SetForcedFeatures(cpu.Features{HasNEON: true, ForceGeneric: true, Architecture: "arm64"})
	assert.Empty(t, detectHost().SIMD)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))

	err := WrapExitError(ExitCommandError, "read results", assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "read results: "+assert.AnError.Error(), err.Error())
	assert.Equal(t, "plain", NewExitError(ExitFailure, "plain").Error())
}
