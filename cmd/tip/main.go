// Command tip is the TIP type checker's command-line entry point.
package main

import (
	"os"

	"github.com/lengyijun/tip-go/cmd/tip/cmd"
)

func main() {
	// cobra's own error handling already prints the error to stderr;
	// Execute returning non-nil just needs to become a non-zero exit.
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
