// File: config.go
// Title: Settings Loading
// Description: Loads strutil command line settings from TOML or YAML files,
//              with the file format detected from the extension. Missing
//              keys keep their defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	strerrors "github.com/msto63/strutil/core/errors"
)

// Format represents a configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Settings holds every value the CLI reads from configuration
type Settings struct {
	Truncate TruncateSettings `toml:"truncate" yaml:"truncate"`
	Encode   EncodeSettings   `toml:"encode" yaml:"encode"`
	Split    SplitSettings    `toml:"split" yaml:"split"`
	Log      LogSettings      `toml:"log" yaml:"log"`

	// Source is the file the settings were read from, empty for defaults
	Source string `toml:"-" yaml:"-"`
}

// TruncateSettings configures the truncate and preview commands
type TruncateSettings struct {
	MaxLength int    `toml:"max_length" yaml:"max_length"`
	Ellipsis  string `toml:"ellipsis" yaml:"ellipsis"`
}

// EncodeSettings configures the encode command
type EncodeSettings struct {
	Uppercase bool `toml:"uppercase" yaml:"uppercase"`
}

// SplitSettings configures the split command
type SplitSettings struct {
	Delimiter string `toml:"delimiter" yaml:"delimiter"`
	DropEmpty bool   `toml:"drop_empty" yaml:"drop_empty"`
}

// LogSettings configures diagnostic logging
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		Truncate: TruncateSettings{MaxLength: 80, Ellipsis: "..."},
		Encode:   EncodeSettings{Uppercase: true},
		Split:    SplitSettings{Delimiter: ","},
		Log:      LogSettings{Level: "info", Format: "text"},
	}
}

// Load reads settings from filePath, applies STRUTIL_* environment
// overrides and validates the result.
func Load(filePath string) (*Settings, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, strerrors.ConfigError("Load", filePath, err)
	}

	format := detectFormat(filePath)
	s, err := parse(content, format)
	if err != nil {
		return nil, strerrors.ConfigError("Load", filePath, err).WithDetail("format", format.String())
	}
	s.Source = filePath

	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parse decodes content on top of the defaults
func parse(content []byte, format Format) (*Settings, error) {
	s := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		md, err := toml.Decode(string(content), s)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, strerrors.InvalidConfig(undecoded[0].String(), nil, "unknown key")
		}
	}
	return s, nil
}
