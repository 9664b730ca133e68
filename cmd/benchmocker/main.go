// Command benchmocker runs fair interleaved micro-benchmarks of the built-in
// mocking suites.
package main

import (
	"context"
	"os"

	"github.com/roach88/benchmocker/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
