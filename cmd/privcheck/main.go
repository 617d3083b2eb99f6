// Command privcheck reports whether the running process has macOS Developer Tool
// privileges and whether SIP filesystem protections are active.
package main

import (
	"context"
	"os"

	"github.com/mpyw/privcheck/internal/cli/commands"
	"github.com/mpyw/privcheck/internal/cli/output"
)

func main() {
	if err := commands.App.Run(context.Background(), os.Args); err != nil {
		output.Error(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
