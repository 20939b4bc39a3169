// Command rsqrtbench compares the magic-constant reciprocal square root
// with 1/math.Sqrt for f = 1, 2, …, 9999.
//
// Results go to stdout, tick counts (nanoseconds) to stderr:
//
//	rsqrtbench > value_differences.txt 2> cycle_differences.txt
//
// The command takes no flags and reads no configuration.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-rsqrt/bench"
)

func main() {
	if err := bench.Run(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
