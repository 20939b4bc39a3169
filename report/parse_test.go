package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValues(t *testing.T) {
	in := "1.000000 1.000000 0.998307 0.001693\n" +
		"\n" +
		"  4.000000 0.500000 0.499154 0.000846  \n"

	got, err := ParseValues(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, ValueRecord{F: 1, Reference: 1, Approx: 0.998307, Diff: 0.001693}, got[0])
	assert.Equal(t, ValueRecord{F: 4, Reference: 0.5, Approx: 0.499154, Diff: 0.000846}, got[1])
}

func TestParseValuesEmpty(t *testing.T) {
	got, err := ParseValues(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseValuesMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
	}{
		{"too few fields", "1 2 3 4\n1 2 3\n", 2},
		{"too many fields", "1 2 3 4 5\n", 1},
		{"not a number", "1 2 3 4\n\n1 x 3 4\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValues(strings.NewReader(tt.in))
			require.ErrorIs(t, err, ErrMalformedLine)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line)
			assert.Contains(t, err.Error(), "line ")
		})
	}
}

func TestParseTimings(t *testing.T) {
	got, err := ParseTimings(strings.NewReader("120 35\n0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, []TimingRecord{
		{ReferenceTicks: 120, ApproxTicks: 35},
		{ReferenceTicks: 0, ApproxTicks: 0},
	}, got)
}

func TestParseTimingsMalformed(t *testing.T) {
	_, err := ParseTimings(strings.NewReader("1 2\n1.5 2\n"))
	require.ErrorIs(t, err, ErrMalformedLine)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "1.5 2", perr.Text)

	_, err = ParseTimings(strings.NewReader("7\n"))
	require.ErrorIs(t, err, ErrMalformedLine)
}
