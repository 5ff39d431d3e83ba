// Command minque filters records with query expressions.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mizukyf/minque/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// Commands report their own failures; cobra errors (bad flags,
	// missing arguments) still need printing.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
