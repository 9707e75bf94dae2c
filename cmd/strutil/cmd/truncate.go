// File: truncate.go
// Title: truncate Command
// Description: Shortens the input with an ellipsis, or escapes and shortens
//              it for previews.
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

func newTruncateCmd(a *app) *cobra.Command {
	var maxLen int
	var ellipsis string
	var preview bool

	cmd := &cobra.Command{
		Use:   "truncate [--max N] [--ellipsis E] [--preview] [text...]",
		Short: "Shorten text to a byte budget",
		Long: `Shorten text to at most --max bytes, ending with --ellipsis.

--preview escapes non-printable bytes first and spends the budget on the
escaped form. Defaults come from the [truncate] configuration section.`,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max") {
				maxLen = a.settings.Truncate.MaxLength
			}
			if !cmd.Flags().Changed("ellipsis") {
				ellipsis = a.settings.Truncate.Ellipsis
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if preview {
				text = strutil.PreviewWith(text, maxLen, ellipsis)
			} else {
				text = strutil.TruncateWith(text, maxLen, ellipsis)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}),
	}

	cmd.Flags().IntVar(&maxLen, "max", 80, "maximum length in bytes")
	cmd.Flags().StringVar(&ellipsis, "ellipsis", strutil.DefaultEllipsis, "text appended when shortened")
	cmd.Flags().BoolVar(&preview, "preview", false, "escape non-printable bytes before truncating")
	return cmd
}
