// Command streams runs the lazy pipeline demos over the bundled people and
// cars fixtures.
//
//	streams list
//	streams run --lecture 7
//	streams run min max --format json
package main

import (
	"context"
	"os"

	"github.com/kbukum/gostreams/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
