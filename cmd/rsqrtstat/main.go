// Command rsqrtstat summarises the two streams written by rsqrtbench.
//
// Usage:
//
//	rsqrtstat [flags] VALUES [TIMINGS]
//
// Examples:
//
//	rsqrtbench > value_differences.txt 2> cycle_differences.txt
//	rsqrtstat value_differences.txt cycle_differences.txt
//	rsqrtstat --format yaml --tolerance 0.002 value_differences.txt
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-rsqrt/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
