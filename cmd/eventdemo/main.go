// Package main implements eventdemo, a small command that drives the event
// registry: it registers the sample workshop (or a seed catalog), buys
// tickets and prints the resulting state.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
