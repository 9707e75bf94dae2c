// File: main.go
// Title: strutil Entry Point
// Description: Runs the strutil command tree and maps failures to exit
//              codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/msto63/strutil/cmd/strutil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
