// lfenv - LS_COLORS / LF_COLORS / LF_ICONS generator
// Author: lfenv contributors
// Source: https://github.com/lfenv/lfenv

package main

import (
	"os"

	"github.com/lfenv/lfenv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
