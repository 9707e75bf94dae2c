// File: encode.go
// Title: encode Command
// Description: Renders the input bytes as hex or binary digits.
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

func newEncodeCmd(a *app) *cobra.Command {
	var lower bool

	cmd := &cobra.Command{
		Use:       "encode hex|binary [text...]",
		Short:     "Render the bytes of the input as hex or binary digits",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"hex", "binary"},
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			encoding := args[0]
			if encoding != "hex" && encoding != "binary" {
				return strerrors.InvalidFormat(strerrors.ModuleCLI, "encode", encoding, "hex|binary")
			}

			text, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			if encoding == "binary" {
				fmt.Fprintln(cmd.OutOrStdout(), strutil.ToBinaryString([]byte(text)))
				return nil
			}
			upper := a.settings.Encode.Uppercase
			if cmd.Flags().Changed("lower") {
				upper = !lower
			}
			fmt.Fprintln(cmd.OutOrStdout(), strutil.ToHexString([]byte(text), upper))
			return nil
		}),
	}

	cmd.Flags().BoolVar(&lower, "lower", false, "lowercase hex digits")
	return cmd
}
