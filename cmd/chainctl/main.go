// Command chainctl drives the incident process chain engine from a
// JSON fixture, standing in for the out-of-scope HTTP/RPC service
// surface (spec.md §1) with a minimal CLI analog.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
