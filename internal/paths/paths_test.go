package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDirXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "sdkrun")
	if got := ConfigDir(); got != want {
		t.Fatalf("expected config dir %s, got %s", want, got)
	}
}

func TestConfigDirHomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".config", "sdkrun")
	if got := ConfigDir(); got != want {
		t.Fatalf("expected config dir %s, got %s", want, got)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "sdkrun", "config.toml")
	if got := ConfigFile(); got != want {
		t.Fatalf("expected config file %s, got %s", want, got)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "tool")
	if err := os.WriteFile(file, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Fatalf("expected FileExists(%s) = true", file)
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Fatal("expected FileExists = false for missing path")
	}
	if FileExists(dir) {
		t.Fatal("expected FileExists = false for a directory")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	if !DirExists(dir) {
		t.Fatalf("expected DirExists(%s) = true", dir)
	}
	if DirExists(filepath.Join(dir, "missing")) {
		t.Fatal("expected DirExists = false for missing path")
	}

	file := filepath.Join(dir, "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if DirExists(file) {
		t.Fatal("expected DirExists = false for a regular file")
	}
}
