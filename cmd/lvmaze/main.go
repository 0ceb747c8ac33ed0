// Package main provides the lvmaze CLI: generate, solve and render mazes
// locally or through the maze servers, and run those servers.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
