// File: split.go
// Title: split Command
// Description: Splits input with any of the strutil splitters and prints
//              the tokens one per line, joined, or as a key/value map for
//              regex separators.
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
	"maps"
	"slices"

	"github.com/spf13/cobra"

	strerrors "github.com/msto63/strutil/core/errors"
	"github.com/msto63/strutil/core/log"
	"github.com/msto63/strutil/utils/strutil"
)

type splitOptions struct {
	delim  string
	anyOf  string
	regex  string
	lines  bool
	clean  bool
	words  bool
	asMap  bool
	drop   bool
	dedupe bool
	join   string
}

func newSplitCmd(a *app) *cobra.Command {
	var o splitOptions

	cmd := &cobra.Command{
		Use:   "split [flags] [text...]",
		Short: "Split text into tokens",
		Long: `Split text into tokens and print one token per line.

Without a splitter flag the delimiter from the configuration is used
(default ","). --map requires --regex and prints "match<TAB>value" pairs.`,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if o.asMap {
				if !cmd.Flags().Changed("regex") {
					return strerrors.InvalidInput(strerrors.ModuleCLI, "split", "--map", "--map requires --regex")
				}
				m, err := strutil.RegexSplitMapPattern(text, o.regex)
				if err != nil {
					return err
				}
				for _, k := range slices.Sorted(maps.Keys(m)) {
					fmt.Fprintf(out, "%s\t%s\n", k, m[k])
				}
				return nil
			}

			tokens, err := o.split(a, cmd, text)
			if err != nil {
				return err
			}
			if o.drop || (!cmd.Flags().Changed("drop-empty") && a.settings.Split.DropEmpty) {
				strutil.DropEmpty(&tokens)
			}
			if o.dedupe {
				strutil.DropDuplicate(&tokens)
			}
			a.logger.Debug("split finished", log.Field("tokens", len(tokens)))

			if cmd.Flags().Changed("join") {
				fmt.Fprintln(out, strutil.Join(tokens, o.join))
				return nil
			}
			for _, tok := range tokens {
				fmt.Fprintln(out, tok)
			}
			return nil
		}),
	}

	f := cmd.Flags()
	f.StringVar(&o.delim, "delim", "", "literal delimiter")
	f.StringVar(&o.anyOf, "any", "", "split at any of these bytes")
	f.StringVar(&o.regex, "regex", "", "regular expression separator")
	f.BoolVar(&o.lines, "lines", false, "split into lines")
	f.BoolVar(&o.clean, "clean", false, "split into trimmed, non-empty lines")
	f.BoolVar(&o.words, "words", false, "split on runs of whitespace")
	f.BoolVar(&o.asMap, "map", false, "with --regex, map each match to the text after it")
	f.BoolVar(&o.drop, "drop-empty", false, "remove empty tokens")
	f.BoolVar(&o.dedupe, "dedupe", false, "sort tokens and remove duplicates")
	f.StringVar(&o.join, "join", "", "print tokens joined with this string")
	cmd.MarkFlagsMutuallyExclusive("delim", "any", "regex", "lines", "clean", "words")
	cmd.MarkFlagsMutuallyExclusive("map", "delim")
	cmd.MarkFlagsMutuallyExclusive("map", "any")
	cmd.MarkFlagsMutuallyExclusive("map", "lines")
	cmd.MarkFlagsMutuallyExclusive("map", "clean")
	cmd.MarkFlagsMutuallyExclusive("map", "words")
	return cmd
}

func (o *splitOptions) split(a *app, cmd *cobra.Command, text string) ([]string, error) {
	switch {
	case cmd.Flags().Changed("any"):
		return strutil.SplitAny(text, o.anyOf), nil
	case cmd.Flags().Changed("regex"):
		return strutil.RegexSplitPattern(text, o.regex)
	case o.lines:
		return strutil.SplitLines(text), nil
	case o.clean:
		return strutil.SplitLinesClean(text), nil
	case o.words:
		return strutil.SplitWords(text), nil
	case cmd.Flags().Changed("delim"):
		return strutil.Split(text, o.delim), nil
	default:
		return strutil.Split(text, a.settings.Split.Delimiter), nil
	}
}
