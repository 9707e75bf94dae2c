// File: trim.go
// Title: trim Command
// Description: Strips ASCII whitespace from one or both ends of the input.
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

	"github.com/msto63/strutil/utils/strutil"
)

func newTrimCmd(a *app) *cobra.Command {
	var left, right bool

	cmd := &cobra.Command{
		Use:   "trim [--left|--right] [text...]",
		Short: "Strip leading and trailing whitespace",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			switch {
			case left:
				strutil.TrimLeft(&text)
			case right:
				strutil.TrimRight(&text)
			default:
				strutil.Trim(&text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&left, "left", false, "trim only the start")
	cmd.Flags().BoolVar(&right, "right", false, "trim only the end")
	cmd.MarkFlagsMutuallyExclusive("left", "right")
	return cmd
}
