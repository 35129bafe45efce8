// Package main provides the dnadb CLI application.
// dnadb builds and queries embedded stores of DNA sequence records
// and their taxonomic labels.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
