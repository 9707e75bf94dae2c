// File: root_test.go
// Title: Command Tree Tests
// Description: Drives the command tree in process and checks output, error
//              codes, exit codes and logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package cmd

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	strerror "github.com/msto63/strutil/core/error"
	strerrors "github.com/msto63/strutil/core/errors"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STRUTIL_CONFIG", "")

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandOutput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"upper", "", []string{"case", "upper", "hello", "world"}, "HELLO WORLD\n"},
		{"capitalize stdin", "heLlo StRUTIL\n", []string{"case", "capitalize"}, "Hello strutil\n"},
		{"upper-first", "", []string{"case", "upper-first", "heLlo"}, "HeLlo\n"},
		{"trim", "", []string{"trim", "  a b  "}, "a b\n"},
		{"trim left", "", []string{"trim", "--left", "  a  "}, "a  \n"},
		{"trim right stdin", "  a  \r\n", []string{"trim", "--right"}, "  a\n"},
		{"replace all", "", []string{"replace", "--target", "$x", "--with", "Y", "$x and $x"}, "Y and Y\n"},
		{"replace first", "", []string{"replace", "--target", "$x", "--with", "Y", "--mode", "first", "$x and $x"}, "Y and $x\n"},
		{"replace missing", "", []string{"replace", "--target", "zz", "--with", "Y", "abc"}, "abc\n"},
		{"split delim", "", []string{"split", "--delim", ";", "a;b;;c"}, "a\nb\n\nc\n"},
		{"split drop empty", "", []string{"split", "--delim", ";", "--drop-empty", "a;b;;c"}, "a\nb\nc\n"},
		{"split default delimiter", "", []string{"split", "x,y"}, "x\ny\n"},
		{"split dedupe join", "", []string{"split", "--delim", ";", "--dedupe", "--join", ",", "b;a;b"}, "a,b\n"},
		{"split regex", "", []string{"split", "--regex", `[,;.?]+`, "abc,abcd;abce.abcf?"}, "abc\nabcd\nabce\nabcf\n"},
		{"split map", "", []string{"split", "--regex", `\[[^\]]+\]`, "--map", "[b] 2 [a] 1"}, "[a]\t 1\n[b]\t 2 \n"},
		{"split words", "", []string{"split", "--words", "--join", "|", " one  two\tthree "}, "one|two|three\n"},
		{"split any", "", []string{"split", "--any", ",;", "--join", "/", "a,b;c"}, "a/b/c\n"},
		{"split clean lines", "  x \n\n y\n", []string{"split", "--clean", "--join", "+"}, "x+y\n"},
		{"truncate", "", []string{"truncate", "--max", "5", "hello world"}, "he...\n"},
		{"truncate default", "", []string{"truncate", "short"}, "short\n"},
		{"truncate ellipsis", "", []string{"truncate", "--max", "2", "--ellipsis", "~", "hello world"}, "h~\n"},
		{"preview", "A\x00B", []string{"truncate", "--preview", "--max", "100"}, `A\0B` + "\n"},
		{"hex", "", []string{"encode", "hex", "\x01\xff"}, "01FF\n"},
		{"hex lower", "", []string{"encode", "hex", "--lower", "\x01\xff"}, "01ff\n"},
		{"binary", "", []string{"encode", "binary", "A"}, "01000001\n"},
		{"match", "", []string{"match", "--pattern", "[0-9]+", "123"}, "true\n"},
		{"no match", "", []string{"match", "--pattern", "[0-9]+", "12a"}, "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stderr, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v (stderr: %s)", err, stderr)
			}
			if out != tt.want {
				t.Errorf("stdout = %q; want %q", out, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code strerror.Code
		exit int
	}{
		{"unknown case", []string{"case", "shout", "x"}, strerror.CodeInvalidInput, 2},
		{"bad encoding", []string{"encode", "base32", "x"}, strerror.CodeInvalidFormat, 2},
		{"bad pattern", []string{"split", "--regex", "(", "x"}, strerror.CodeInvalidPattern, 2},
		{"bad length", []string{"random", "abc"}, strerror.CodeParseError, 2},
		{"strict replace", []string{"replace", "--strict", "--target", "zz", "x"}, strerror.CodeNotFound, 1},
		{"bad mode", []string{"replace", "--mode", "middle", "--target", "x", "x"}, strerror.CodeInvalidInput, 2},
		{"quiet mismatch", []string{"match", "-q", "--pattern", "a", "b"}, strerror.CodeValidationFailed, 2},
		{"bad log format", []string{"--log-format", "xml", "trim", "x"}, strerror.CodeInvalidInput, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			if err == nil {
				t.Fatal("Execute() error = nil, want error")
			}
			if got := strerror.GetCode(err); got != tt.code {
				t.Errorf("code = %v; want %v (err: %v)", got, tt.code, err)
			}
			if got := ExitCode(err); got != tt.exit {
				t.Errorf("ExitCode() = %d; want %d", got, tt.exit)
			}
		})
	}
}

func TestFlagConflicts(t *testing.T) {
	if _, _, err := execute(t, "", "split", "--delim", ";", "--words", "a"); err == nil {
		t.Error("--delim and --words together should fail")
	}
	if _, _, err := execute(t, "", "split", "--map", "a"); err == nil {
		t.Error("--map without --regex should fail")
	}
	if _, _, err := execute(t, "", "replace", "x"); err == nil {
		t.Error("replace without --target should fail")
	}
}

func TestRandomCommand(t *testing.T) {
	out, _, err := execute(t, "", "random", "12")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	s := strings.TrimSuffix(out, "\n")
	if len(s) != 12 || strings.Trim(s, "abcdefghijklmnopqrstuvwxyz") != "" {
		t.Errorf("random 12 = %q", s)
	}

	out, _, err = execute(t, "", "random", "--secure", "--charset", "01", "16")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if s := strings.TrimSuffix(out, "\n"); len(s) != 16 || strings.Trim(s, "01") != "" {
		t.Errorf("random --charset 01 = %q", s)
	}

	out, _, _ = execute(t, "", "random", "0")
	if out != "\n" {
		t.Errorf("random 0 = %q", out)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strutil.toml")
	content := "[truncate]\nmax_length = 4\nellipsis = \"~\"\n\n[encode]\nuppercase = false\n\n[split]\ndelimiter = \"|\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--config", path, "truncate", "hello"}, "hel~\n"},
		{[]string{"--config", path, "encode", "hex", "\xab"}, "ab\n"},
		{[]string{"--config", path, "split", "a|b"}, "a\nb\n"},
	}
	for _, tt := range tests {
		out, _, err := execute(t, "", tt.args...)
		if err != nil {
			t.Fatalf("%v: error = %v", tt.args, err)
		}
		if out != tt.want {
			t.Errorf("%v: stdout = %q; want %q", tt.args, out, tt.want)
		}
	}

	_, _, err := execute(t, "", "--config", filepath.Join(dir, "missing.toml"), "trim", "x")
	if got := ExitCode(err); got != 3 {
		t.Errorf("missing config ExitCode() = %d; want 3 (err: %v)", got, err)
	}
}

func TestNegativeMaxLengthIsConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neg.toml")
	if err := os.WriteFile(path, []byte("[truncate]\nmax_length = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	check := func(name string, err error) {
		t.Helper()
		if got := strerror.GetCode(err); got != strerror.CodeInvalidConfig {
			t.Errorf("%s: code = %v; want %v (err: %v)", name, got, strerror.CodeInvalidConfig, err)
		}
		if got := ExitCode(err); got != 3 {
			t.Errorf("%s: ExitCode() = %d; want 3", name, got)
		}
	}

	_, _, err := execute(t, "", "--config", path, "trim", "x")
	check("file", err)

	t.Setenv("STRUTIL_TRUNCATE_MAX_LENGTH", "-1")
	_, _, err = execute(t, "", "trim", "x")
	check("environment", err)
}

func TestReplaceWarnsWhenNothingReplaced(t *testing.T) {
	out, stderr, err := execute(t, "", "replace", "--target", "zz", "--with", "y", "abc")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "abc\n" {
		t.Errorf("stdout = %q; want %q", out, "abc\n")
	}
	if !strings.Contains(stderr, "[WRN]") || !strings.Contains(stderr, "nothing replaced") {
		t.Errorf("stderr = %q; want a warning", stderr)
	}
}

func TestVerboseJSONLogging(t *testing.T) {
	_, stderr, err := execute(t, "", "-v", "--log-format", "json", "split", "--delim", ";", "a;b")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected debug log lines, got %q", stderr)
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if first["message"] != "configuration loaded" || first["source"] != "defaults" {
		t.Errorf("first log line = %v", first)
	}
	id, _ := first["correlation_id"].(string)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("correlation_id %q is not a UUID", id)
	}
	if first["command"] != "split" {
		t.Errorf("command field = %v", first["command"])
	}
	if first["log_level"] != "debug" || first["log_format"] != "json" {
		t.Errorf("log settings = %v/%v; want debug/json", first["log_level"], first["log_format"])
	}

	for _, line := range lines[1:] {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		if entry["correlation_id"] != id {
			t.Error("all lines of one run should share the correlation ID")
		}
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "strutil v"+Version) || !strings.Contains(out, "Go Version") {
		t.Errorf("version output = %q", out)
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"parse error", strerrors.ParseFailed("ParseString", "abc", "int", nil), `Error [STRUTIL_PARSE_ERROR]: cannot parse "abc" as int`},
		{"plain", stderrors.New("boom"), "Error [UNKNOWN]: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("printError() = %q; want it to contain %q", buf.String(), tt.want)
			}
		})
	}

	if ExitCode(nil) != 0 {
		t.Error("ExitCode(nil) should be 0")
	}
}
