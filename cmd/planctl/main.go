// Command planctl runs the plan parser and shopping extractor offline.
package main

import (
	"fmt"
	"os"

	"sehrimilan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "planctl: %v\n", err)
		os.Exit(1)
	}
}
