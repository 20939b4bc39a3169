package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine is wrapped by every ParseError.
var ErrMalformedLine = errors.New("malformed line")

// ValueRecord is one line of a results stream.
type ValueRecord struct {
	F         float64
	Reference float64
	Approx    float64
	Diff      float64
}

// TimingRecord is one line of a diagnostics stream.
type TimingRecord struct {
	ReferenceTicks int64
	ApproxTicks    int64
}

// ParseError reports the 1-based line that failed to parse.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseValues reads a results stream. Blank lines are skipped.
func ParseValues(r io.Reader) ([]ValueRecord, error) {
	var out []ValueRecord

	err := scanFields(r, 4, func(fields []string) error {
		var v [4]float64
		for i, s := range fields {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			v[i] = f
		}
		out = append(out, ValueRecord{F: v[0], Reference: v[1], Approx: v[2], Diff: v[3]})
		return nil
	})

	return out, err
}

// ParseTimings reads a diagnostics stream. Blank lines are skipped.
func ParseTimings(r io.Reader) ([]TimingRecord, error) {
	var out []TimingRecord

	err := scanFields(r, 2, func(fields []string) error {
		ref, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return err
		}
		approx, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return err
		}
		out = append(out, TimingRecord{ReferenceTicks: ref, ApproxTicks: approx})
		return nil
	})

	return out, err
}

func scanFields(r io.Reader, n int, fn func([]string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != n {
			return &ParseError{
				Line: line,
				Text: text,
				Err:  fmt.Errorf("%w: got %d fields, want %d", ErrMalformedLine, len(fields), n),
			}
		}
		if err := fn(fields); err != nil {
			return &ParseError{Line: line, Text: text, Err: fmt.Errorf("%w: %w", ErrMalformedLine, err)}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("report: read line %d: %w", line+1, err)
	}
	return nil
}
