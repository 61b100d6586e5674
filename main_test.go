package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunScriptsThenExpr(t *testing.T) {
	script := writeScript(t, "sq.l", "#!/usr/bin/env lisp\n(defun sq (x) (* x x))\n(echo (sq 3))\n")
	var stdout, stderr bytes.Buffer
	status := Main([]string{"lisp", "-e", "(sq 5)", script}, &stdout, &stderr)
	if status != 0 {
		t.Fatalf("status %d, stderr: %s", status, stderr.String())
	}
	if got, want := stdout.String(), "9\n25\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRunReportsErrors(t *testing.T) {
	script := writeScript(t, "bad.l", "(car 1)")
	var stdout, stderr bytes.Buffer
	if status := Main([]string{"lisp", script}, &stdout, &stderr); status != 1 {
		t.Errorf("got status %d want 1", status)
	}
	if !strings.Contains(stderr.String(), "type mismatch") {
		t.Errorf("stderr does not name the error: %s", stderr.String())
	}

	if status := Main([]string{"lisp", filepath.Join(t.TempDir(), "missing.l")}, &stdout, &stderr); status != 1 {
		t.Errorf("missing file: got status %d want 1", status)
	}
	if status := Main([]string{"lisp", "-no-such-flag"}, &stdout, &stderr); status != 2 {
		t.Errorf("bad flag: got status %d want 2", status)
	}
}

func TestRunDumpsForms(t *testing.T) {
	script := writeScript(t, "d.l", "(undefined 1)")
	var stdout, stderr bytes.Buffer
	if status := Main([]string{"lisp", "-ast", script}, &stdout, &stderr); status != 0 {
		t.Fatalf("status %d, stderr: %s", status, stderr.String())
	}
	if !strings.Contains(stdout.String(), "undefined") {
		t.Errorf("dump does not show the form: %s", stdout.String())
	}
}

func TestRunVerboseLogsForms(t *testing.T) {
	script := writeScript(t, "v.l", "(+ 1 2)")
	var stdout, stderr bytes.Buffer
	if status := Main([]string{"lisp", "-v", script}, &stdout, &stderr); status != 0 {
		t.Fatalf("status %d, stderr: %s", status, stderr.String())
	}
	if !strings.Contains(stderr.String(), "result=3") {
		t.Errorf("log lacks the result: %s", stderr.String())
	}
}
