// walletmoney is a command-line front end for the money package: it parses,
// formats, converts and decodes wallet amounts.
package main

import (
	"fmt"
	"os"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
