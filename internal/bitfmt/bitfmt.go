// Package bitfmt renders fixed-width integers as binary digit sequences.
package bitfmt

import "strings"

// Width is the number of digits produced by Digits.
const Width = 32

// Digits returns the Width binary digits of i, least significant first.
// Negative values yield their two's-complement encoding.
func Digits(i int32) []bool {
	digits := make([]bool, Width)
	for j := range digits {
		digits[j] = i%2 != 0
		i >>= 1
	}
	return digits
}

// String renders digits most significant first.
func String(digits []bool) string {
	var sb strings.Builder
	sb.Grow(len(digits))
	for j := len(digits) - 1; j >= 0; j-- {
		if digits[j] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Grouped renders digits most significant first with a separator between
// every group of size digits, counted from the least significant end.
func Grouped(digits []bool, size int, sep string) string {
	s := String(digits)
	if size <= 0 || len(s) <= size {
		return s
	}
	var sb strings.Builder
	lead := len(s) % size
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for k := lead; k < len(s); k += size {
		if k > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(s[k : k+size])
	}
	return sb.String()
}
