// Package main is the entry point for the phonebill CLI.
package main

import (
	"os"

	"github.com/lubomirsilny/arbes-assignment/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
