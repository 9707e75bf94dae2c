// File: root.go
// Title: strutil Root Command
// Description: Builds the cobra command tree, loads settings, and sets up
//              the per-run logger before any subcommand executes.
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
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/strutil/core/config"
	strerror "github.com/msto63/strutil/core/error"
	strerrors "github.com/msto63/strutil/core/errors"
	"github.com/msto63/strutil/core/log"
)

var (
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// app carries state shared by all subcommands of one run
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	settings *config.Settings
	logger   *log.Logger
	runID    string
}

// NewRootCmd returns a fresh command tree
func NewRootCmd() *cobra.Command {
	a := &app{logger: log.Discard()}

	root := &cobra.Command{
		Use:   "strutil",
		Short: "Byte-oriented string utilities",
		Long: `strutil applies text transformations to its arguments or to stdin.

Commands:
  case      - change letter case
  trim      - strip surrounding whitespace
  replace   - replace first, last or all occurrences
  split     - split on delimiters, lines, words or a regex
  truncate  - shorten text with an ellipsis or preview it escaped
  encode    - render text as hex or binary
  random    - generate random strings
  match     - check whether a regex matches the whole text`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $STRUTIL_CONFIG, ./strutil.toml, ./strutil.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, console, json or logfmt")

	root.AddCommand(
		newCaseCmd(a),
		newTrimCmd(a),
		newReplaceCmd(a),
		newSplitCmd(a),
		newTruncateCmd(a),
		newEncodeCmd(a),
		newRandomCmd(a),
		newMatchCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line and prints any error to stderr
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return strerror.GetCode(err).ExitCode()
}

func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.settings, err = config.Load(a.cfgFile)
	} else {
		a.settings, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(a.settings.Log.Level)
	if err != nil {
		return err
	}
	if a.verbose {
		level = log.LevelDebug
	}

	formatName := a.settings.Log.Format
	if a.logFormat != "" {
		formatName = a.logFormat
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return err
	}

	a.runID = uuid.NewString()
	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "strutil",
	}).WithCorrelationID(a.runID).WithField("command", cmd.Name())

	source := a.settings.Source
	if source == "" {
		source = "defaults"
	}
	a.logger.Debug("configuration loaded", log.Fields{
		"source":     source,
		"log_level":  level.String(),
		"log_format": format.String(),
	})
	return nil
}

// run wraps a subcommand body with timing and error logging
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		timer := a.logger.StartTimer(cmd.Name())
		err := fn(cmd, args)
		if err != nil {
			a.logger.LogError(err)
			return err
		}
		timer.Stop()
		return nil
	}
}

// readInput joins args with spaces, or reads stdin when there are none.
// One trailing line break is removed from stdin input.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", strerrors.OperationFailed(strerrors.ModuleCLI, "readInput", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// printError writes err as "Error [CODE]: message"
func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	tag := "Error [" + strerror.GetCode(err).String() + "]:"
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render(tag), err)
}
