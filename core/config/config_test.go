// File: config_test.go
// Title: Unit Tests for Settings
// Description: Tests defaults, file loading, environment overrides,
//              discovery and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	strerror "github.com/msto63/strutil/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.Truncate.MaxLength != 80 || s.Truncate.Ellipsis != "..." {
		t.Errorf("truncate defaults = %+v", s.Truncate)
	}
	if !s.Encode.Uppercase {
		t.Error("encode.uppercase should default to true")
	}
	if s.Split.Delimiter != "," || s.Split.DropEmpty {
		t.Errorf("split defaults = %+v", s.Split)
	}
	if s.Log.Level != "info" || s.Log.Format != "text" {
		t.Errorf("log defaults = %+v", s.Log)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "strutil.toml", `
[truncate]
max_length = 20

[split]
delimiter = ";"
drop_empty = true
`)

	s, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Truncate.MaxLength != 20 {
		t.Errorf("MaxLength = %d, want 20", s.Truncate.MaxLength)
	}
	if s.Truncate.Ellipsis != "..." {
		t.Errorf("Ellipsis = %q, missing keys should keep defaults", s.Truncate.Ellipsis)
	}
	if s.Split.Delimiter != ";" || !s.Split.DropEmpty {
		t.Errorf("Split = %+v", s.Split)
	}
	if s.Source != p {
		t.Errorf("Source = %q, want %q", s.Source, p)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "strutil.yml", "encode:\n  uppercase: false\nlog:\n  level: debug\n  format: json\n")

	s, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Encode.Uppercase {
		t.Error("Uppercase = true, want false")
	}
	if s.Log.Level != "debug" || s.Log.Format != "json" {
		t.Errorf("Log = %+v", s.Log)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
		code strerror.Code
	}{
		{"missing file", filepath.Join(dir, "absent.toml"), strerror.CodeConfigError},
		{"bad toml", writeFile(t, dir, "bad.toml", "[truncate\nmax_length = 1"), strerror.CodeConfigError},
		{"unknown key", writeFile(t, dir, "unknown.toml", "[truncate]\nwidth = 3\n"), strerror.CodeConfigError},
		{"negative length", writeFile(t, dir, "neg.toml", "[truncate]\nmax_length = -1\n"), strerror.CodeInvalidConfig},
		{"bad level", writeFile(t, dir, "lvl.yaml", "log:\n  level: loud\n"), strerror.CodeInvalidConfig},
		{"empty delimiter", writeFile(t, dir, "delim.toml", "[split]\ndelimiter = \"\"\n"), strerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if got := strerror.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestLoadReportsFormat(t *testing.T) {
	p := writeFile(t, t.TempDir(), "bad.yaml", "truncate: [\n")
	_, err := Load(p)
	var se *strerror.Error
	if !errors.As(err, &se) {
		t.Fatalf("Load() error = %v, want *Error", err)
	}
	if se.Details()["format"] != "yaml" {
		t.Errorf("Details()[format] = %v, want yaml", se.Details()["format"])
	}
}

func TestParse(t *testing.T) {
	s, err := parse([]byte("truncate:\n  ellipsis: \"~\"\n"), FormatYAML)
	if err != nil {
		t.Fatalf("parse() error = %v", err)
	}
	if s.Truncate.Ellipsis != "~" || s.Truncate.MaxLength != 80 {
		t.Errorf("Truncate = %+v", s.Truncate)
	}

	if _, err := parse(nil, FormatYAML); err != nil {
		t.Errorf("empty YAML should yield defaults, got %v", err)
	}
	if _, err := parse([]byte("= broken"), FormatTOML); err == nil {
		t.Error("broken TOML should fail")
	}
}

func TestValidateNegativeMaxLength(t *testing.T) {
	s := Default()
	s.Truncate.MaxLength = -1
	err := s.Validate()
	if got := strerror.GetCode(err); got != strerror.CodeInvalidConfig {
		t.Fatalf("GetCode() = %v, want %v (err: %v)", got, strerror.CodeInvalidConfig, err)
	}
	if got := strerror.GetCode(err).ExitCode(); got != 3 {
		t.Errorf("ExitCode() = %d, want 3", got)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"STRUTIL_TRUNCATE_MAX_LENGTH": "12",
		"STRUTIL_ENCODE_UPPERCASE":    "false",
		"STRUTIL_SPLIT_DELIMITER":     "|",
		"STRUTIL_LOG_LEVEL":           "warn",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	s := Default()
	if err := s.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if s.Truncate.MaxLength != 12 || s.Encode.Uppercase || s.Split.Delimiter != "|" || s.Log.Level != "warn" {
		t.Errorf("settings after env = %+v", s)
	}

	env["STRUTIL_SPLIT_DROP_EMPTY"] = "maybe"
	if err := Default().ApplyEnv(lookup); !strerror.HasCode(err, strerror.CodeInvalidConfig) {
		t.Errorf("ApplyEnv() error = %v, want invalid config", err)
	}
}

func TestEnvKey(t *testing.T) {
	if got := EnvKey("truncate.max_length"); got != "STRUTIL_TRUNCATE_MAX_LENGTH" {
		t.Errorf("EnvKey() = %q", got)
	}
}

func TestLoadAppliesEnvironment(t *testing.T) {
	p := writeFile(t, t.TempDir(), "strutil.toml", "[truncate]\nmax_length = 20\n")
	t.Setenv("STRUTIL_TRUNCATE_MAX_LENGTH", "5")

	s, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Truncate.MaxLength != 5 {
		t.Errorf("MaxLength = %d, environment should win over the file", s.Truncate.MaxLength)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "missing.toml")
	second := writeFile(t, dir, "found.yaml", "split:\n  delimiter: \"\\t\"\n")

	opts := DiscoveryOptions{Paths: []string{first, dir, second}}
	if got := FindConfigFile(opts); got != second {
		t.Errorf("FindConfigFile() = %q, want %q", got, second)
	}

	s, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if s.Split.Delimiter != "\t" || s.Source != second {
		t.Errorf("Discover() = %+v", s)
	}

	s, err = Discover(DiscoveryOptions{Paths: []string{first}})
	if err != nil {
		t.Fatalf("Discover() without files error = %v", err)
	}
	if s.Source != "" || s.Truncate.MaxLength != 80 {
		t.Errorf("Discover() without files = %+v, want defaults", s)
	}
}

func TestDefaultDiscoveryOptions(t *testing.T) {
	t.Setenv("STRUTIL_CONFIG", "/etc/strutil/custom.toml")
	opts := DefaultDiscoveryOptions()
	if len(opts.Paths) < 3 || opts.Paths[0] != "/etc/strutil/custom.toml" {
		t.Fatalf("Paths = %v", opts.Paths)
	}
	if opts.Paths[1] != "strutil.toml" || opts.Paths[2] != "strutil.yaml" {
		t.Errorf("Paths = %v", opts.Paths)
	}
}
