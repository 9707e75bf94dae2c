// Package log provides the structured logger used by the strutil command
// line tool.
//
// The string utility package itself never logs; its functions are pure.
// The CLI creates one Logger per run, tags it with a correlation ID and
// routes diagnostic output to stderr so that command results on stdout
// stay machine readable.
//
// Four formats are available: json, text, logfmt and console. The console
// format colors the level tag using lipgloss.
//
// Basic usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatConsole})
//	logger = logger.WithCorrelationID(runID)
//	logger.Info("command started", log.Field("command", "split"))
//
// Errors from the strutil error system carry a severity; LogError maps
// low severity to info, medium to warn and everything else to error.
package log
