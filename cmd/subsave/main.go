// Command subsave manages subscription records in a flat file.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/subsave/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
