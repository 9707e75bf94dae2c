// File: random.go
// Title: random Command
// Description: Generates random strings from the default, alphanumeric or a
//              custom character set, optionally from crypto/rand.
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

func newRandomCmd(a *app) *cobra.Command {
	var alnum, secure bool
	var charset string

	cmd := &cobra.Command{
		Use:   "random [--alnum|--charset C] [--secure] N",
		Short: "Generate a random string of N bytes",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			n, err := strutil.ParseString[int](args[0])
			if err != nil {
				return err
			}
			if n < 0 {
				return strerrors.OutOfRange(strerrors.ModuleCLI, "length", n, 0, nil)
			}

			set := strutil.LettersLowercase
			switch {
			case charset != "":
				set = charset
			case alnum:
				set = strutil.Alphanumeric
			}

			var s string
			if secure {
				if s, err = strutil.RandomSecureString(n, set); err != nil {
					return err
				}
			} else {
				s = strutil.RandomStringFromSet(n, set)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&alnum, "alnum", false, "use digits and both letter cases")
	cmd.Flags().StringVar(&charset, "charset", "", "draw from these bytes")
	cmd.Flags().BoolVar(&secure, "secure", false, "use the operating system's secure random source")
	cmd.MarkFlagsMutuallyExclusive("alnum", "charset")
	return cmd
}
