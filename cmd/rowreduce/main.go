// SPDX-License-Identifier: MIT

// Command rowreduce solves linear systems by Gaussian elimination and prints
// every row operation on the way.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rowreduce/cli"
)

func main() {
	cxt := cli.NewContext(os.Stdin, os.Stdout, os.Stderr)
	if err := cli.Execute(cxt, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
