// File: replace.go
// Title: replace Command
// Description: Replaces the first, last or every occurrence of a substring.
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
	"github.com/msto63/strutil/core/log"
	"github.com/msto63/strutil/utils/strutil"
)

func newReplaceCmd(a *app) *cobra.Command {
	var target, with, mode string
	var strict bool

	cmd := &cobra.Command{
		Use:   "replace --target T --with R [--mode first|last|all] [text...]",
		Short: "Replace occurrences of a substring",
		Long: `Replace the first, last or every occurrence of --target.

Text without the target is printed unchanged; with --strict it is an error.`,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			var fn func(*string, string, string) bool
			switch mode {
			case "first":
				fn = strutil.ReplaceFirst
			case "last":
				fn = strutil.ReplaceLast
			case "all":
				fn = strutil.ReplaceAll
			default:
				return strerrors.InvalidInput(strerrors.ModuleCLI, "replace", mode, "first|last|all")
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !fn(&text, target, with) {
				if strict {
					return strerrors.NotFound(strerrors.ModuleCLI, "replace", target)
				}
				a.logger.Warn("nothing replaced", log.Field("target", target))
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}),
	}

	cmd.Flags().StringVar(&target, "target", "", "substring to replace")
	cmd.Flags().StringVar(&with, "with", "", "replacement text")
	cmd.Flags().StringVar(&mode, "mode", "all", "first, last or all")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the target does not occur")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
