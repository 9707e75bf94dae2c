// File: match.go
// Title: match Command
// Description: Reports whether a regular expression matches the whole
//              input.
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

	strerror "github.com/msto63/strutil/core/error"
	strerrors "github.com/msto63/strutil/core/errors"
	"github.com/msto63/strutil/utils/strutil"
)

func newMatchCmd(a *app) *cobra.Command {
	var pattern string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "match --pattern P [text...]",
		Short: "Report whether a regular expression matches the whole input",
		Long: `Print "true" when --pattern matches the entire input and "false"
otherwise. With --quiet nothing is printed and a mismatch is an error.`,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			ok, err := strutil.MatchesPattern(text, pattern)
			if err != nil {
				return err
			}
			if quiet {
				if !ok {
					return strerrors.NewErrorBuilder(strerrors.ModuleCLI).
						Operation("match").
						Messagef("input does not match %q", pattern).
						Code(strerror.CodeValidationFailed).
						Build()
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		}),
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "regular expression")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no output, fail on mismatch")
	_ = cmd.MarkFlagRequired("pattern")
	return cmd
}
