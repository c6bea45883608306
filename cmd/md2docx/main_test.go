package main

// Notes:
// - main: not tested; it only wires os.Args, DefaultEnv and os.Exit.
// - setMaxProcs: not tested; it mutates process-wide GOMAXPROCS.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestIsCommand - Command name detection
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"convert", true},
		{"config", true},
		{"version", true},
		{"help", true},
		{"notes.md", false},
		{"Convert", false},
		{"-o", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isCommand(tt.input); got != tt.want {
			t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWantsVerbose - Pre-parse verbose detection
// ---------------------------------------------------------------------------

func TestWantsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"md2docx", "a.md", "-v"}, true},
		{[]string{"md2docx", "--verbose"}, true},
		{[]string{"md2docx", "a.md"}, false},
		{[]string{"md2docx", "-q"}, false},
	}

	for _, tt := range tests {
		if got := wantsVerbose(tt.args); got != tt.want {
			t.Errorf("wantsVerbose(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if code := runMain([]string{"md2docx", "version"}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if want := "go-md2docx " + Version + "\n"; stdout.String() != want {
			t.Errorf("stdout = %q, want %q", stdout.String(), want)
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if code := runMain([]string{"md2docx", "help"}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "Commands:") {
			t.Errorf("stdout missing command list:\n%s", stdout.String())
		}
	})

	t.Run("help flag", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		if code := runMain([]string{"md2docx", "--help"}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stderr.String(), "--highlight") {
			t.Errorf("stderr missing convert usage:\n%s", stderr.String())
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		if code := runMain([]string{"md2docx", "--bogus"}, env); code != ExitUsage {
			t.Fatalf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "bogus") {
			t.Errorf("stderr should name the flag:\n%s", stderr.String())
		}
	})

	t.Run("implicit convert", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeMarkdown(t, dir, "notes.md", "# Notes\n\n- a\n- b\n")
		dst := filepath.Join(dir, "notes.docx")

		env, stdout, stderr := testEnv()
		if code := runMain([]string{"md2docx", src, dst}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
		}
		want := "[SUCCESS] Converted " + src + " to " + dst + "\n"
		if stdout.String() != want {
			t.Errorf("stdout = %q, want %q", stdout.String(), want)
		}
		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("PK")) {
			t.Error("output is not a zip package")
		}
	})

	t.Run("explicit convert", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeMarkdown(t, dir, "a.md", "text\n")

		env, _, stderr := testEnv()
		code := runMain([]string{"md2docx", "convert", src, "-o", filepath.Join(dir, "b.docx"), "-q"}, env)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
		}
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		env, _, stderr := testEnv()
		code := runMain([]string{"md2docx", filepath.Join(dir, "absent.md"), filepath.Join(dir, "out.docx")}, env)
		if code != ExitIO {
			t.Fatalf("exit code = %d, want %d", code, ExitIO)
		}
		if !strings.HasPrefix(stderr.String(), "error: ") {
			t.Errorf("stderr = %q, want error prefix", stderr.String())
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		if code := runMain([]string{"md2docx", "a.md", "b.docx", "c"}, env); code != ExitUsage {
			t.Fatalf("exit code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("config", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if code := runMain([]string{"md2docx", "config"}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		for _, want := range []string{"defaultFile: input.md", "tabWidth: 4"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("config output missing %q:\n%s", want, stdout.String())
			}
		}
	})
}
