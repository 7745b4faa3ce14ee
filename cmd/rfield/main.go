// Package main provides the rfield receptive field analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/rfield/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
