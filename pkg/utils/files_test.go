package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bf")
	const body = "+[-] trailing commentary\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource(%q) failed: %v", path, err)
	}
	if got != body {
		t.Errorf("ReadSource = %q; want %q", got, body)
	}
}

func TestReadSourceRelativePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "prog.bf"), []byte("+."), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Chdir(dir)

	if _, err := ReadSource("prog.bf"); err != nil {
		t.Errorf("ReadSource of a relative path failed: %v", err)
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	if _, err := ReadSource(filepath.Join(t.TempDir(), "absent.bf")); err == nil {
		t.Error("ReadSource of a missing file succeeded")
	}
}
