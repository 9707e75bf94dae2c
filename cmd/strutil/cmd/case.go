// File: case.go
// Title: case Command
// Description: Applies one of the ASCII case conversions to the input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	strerrors "github.com/msto63/strutil/core/errors"
	"github.com/msto63/strutil/utils/strutil"
)

var caseModes = map[string]func(string) string{
	"lower":            strutil.ToLower,
	"upper":            strutil.ToUpper,
	"capitalize":       strutil.Capitalize,
	"capitalize-first": strutil.CapitalizeFirstChar,
	"upper-first":      strutil.UpperFirst,
}

func newCaseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "case lower|upper|capitalize|capitalize-first|upper-first [text...]",
		Short:     "Change the letter case of ASCII text",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"lower", "upper", "capitalize", "capitalize-first", "upper-first"},
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			fn, ok := caseModes[args[0]]
			if !ok {
				return strerrors.InvalidInput(strerrors.ModuleCLI, "case", args[0], "lower|upper|capitalize|capitalize-first|upper-first")
			}
			text, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fn(text))
			return nil
		}),
	}
}
