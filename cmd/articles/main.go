// ABOUTME: Main entry point for the articles command line client
// ABOUTME: Loads configuration from the environment and runs the cobra command tree

package main

import (
	"os"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
