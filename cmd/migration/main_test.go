package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveMigrationsDir_Explicit(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveMigrationsDir(dir)
	if err != nil {
		t.Fatalf("resolve migrations dir: %v", err)
	}
	want, _ := filepath.Abs(dir)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResolveMigrationsDir_SkipsFiles(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir.sql")
	if err := os.WriteFile(file, []byte("SELECT 1;"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("MIGRATIONS_DIR", file)

	if _, err := resolveMigrationsDir(file); err == nil {
		t.Fatalf("expected error when no candidate is a directory")
	}
}

func TestParsePositive(t *testing.T) {
	if n, err := parsePositive(" 3 "); err != nil || n != 3 {
		t.Fatalf("expected 3, got %d err=%v", n, err)
	}
	for _, raw := range []string{"0", "-2", "abc"} {
		if _, err := parsePositive(raw); err == nil {
			t.Fatalf("%q: expected error", raw)
		}
	}
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"up", "down", "version", "force", "goto"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected subcommand %q, got %v err=%v", name, cmd, err)
		}
	}
}
