// File: validation.go
// Title: Settings Validation
// Description: Checks loaded settings before the command line uses them.
//              Every failure is reported as an invalid configuration value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"github.com/msto63/strutil/core/log"

	strerrors "github.com/msto63/strutil/core/errors"
)

// Validate checks value ranges and enumerations
func (s *Settings) Validate() error {
	if s.Truncate.MaxLength < 0 {
		return strerrors.InvalidConfig("truncate.max_length", s.Truncate.MaxLength, "must be >= 0")
	}
	if s.Split.Delimiter == "" {
		return strerrors.InvalidConfig("split.delimiter", s.Split.Delimiter, "must not be empty")
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return strerrors.InvalidConfig("log.level", s.Log.Level, "unknown level")
	}
	if _, err := log.ParseFormat(s.Log.Format); err != nil {
		return strerrors.InvalidConfig("log.format", s.Log.Format, "unknown format")
	}
	return nil
}
