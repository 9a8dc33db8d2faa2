// Command shortcrypt is a CLI wrapper around the shortcrypt package for
// encrypting, decrypting, rotating, and batch-processing short identifiers
// from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/opaquekit/shortcrypt/cmd/shortcrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
