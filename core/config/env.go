// File: env.go
// Title: Environment Overrides
// Description: Applies STRUTIL_* environment variables on top of loaded
//              settings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"strconv"
	"strings"

	strerrors "github.com/msto63/strutil/core/errors"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "STRUTIL_"

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// EnvKey returns the environment variable that overrides a dotted key,
// e.g. "truncate.max_length" becomes STRUTIL_TRUNCATE_MAX_LENGTH.
func EnvKey(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ApplyEnv overrides settings from environment variables
func (s *Settings) ApplyEnv(lookup LookupFunc) error {
	strs := map[string]*string{
		"truncate.ellipsis": &s.Truncate.Ellipsis,
		"split.delimiter":   &s.Split.Delimiter,
		"log.level":         &s.Log.Level,
		"log.format":        &s.Log.Format,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvKey(key)); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"encode.uppercase": &s.Encode.Uppercase,
		"split.drop_empty": &s.Split.DropEmpty,
	}
	for key, dst := range bools {
		v, ok := lookup(EnvKey(key))
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return strerrors.InvalidConfig(key, v, "expected a boolean")
		}
		*dst = b
	}

	if v, ok := lookup(EnvKey("truncate.max_length")); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return strerrors.InvalidConfig("truncate.max_length", v, "expected an integer")
		}
		s.Truncate.MaxLength = n
	}
	return nil
}
