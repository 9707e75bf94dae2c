// File: discovery.go
// Title: Configuration Discovery
// Description: Locates the settings file when none is given on the command
//              line and falls back to defaults when no file exists.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions lists candidate files in lookup order
type DiscoveryOptions struct {
	Paths []string
}

// DefaultDiscoveryOptions returns $STRUTIL_CONFIG, ./strutil.toml,
// ./strutil.yaml and $HOME/.config/strutil/config.toml in that order
func DefaultDiscoveryOptions() DiscoveryOptions {
	var paths []string
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, "strutil.toml", "strutil.yaml")
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "strutil", "config.toml"))
	}
	return DiscoveryOptions{Paths: paths}
}

// FindConfigFile returns the first existing candidate or "" if none exists
func FindConfigFile(options DiscoveryOptions) string {
	for _, p := range options.Paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Discover loads the first existing candidate file. Without one it returns
// the defaults with environment overrides applied.
func Discover(options DiscoveryOptions) (*Settings, error) {
	if p := FindConfigFile(options); p != "" {
		return Load(p)
	}

	s := Default()
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadDefault is Discover with DefaultDiscoveryOptions
func LoadDefault() (*Settings, error) {
	return Discover(DefaultDiscoveryOptions())
}
