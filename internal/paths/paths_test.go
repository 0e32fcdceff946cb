package paths

import (
	"path/filepath"
	"testing"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ResolveConfigDir("/flag/config")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if got != filepath.FromSlash("/flag/config") {
		t.Errorf("flag should win: got %q", got)
	}

	got, err = ResolveConfigDir("")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if got != filepath.FromSlash("/env/config") {
		t.Errorf("env should win without flag: got %q", got)
	}
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	got, err := ResolveDataDir("/flag/data", "/config/data")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.FromSlash("/flag/data") {
		t.Errorf("flag should win: got %q", got)
	}

	got, err = ResolveDataDir("", "/config/data")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.FromSlash("/config/data") {
		t.Errorf("config should beat env: got %q", got)
	}

	got, err = ResolveDataDir("", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.FromSlash("/env/data") {
		t.Errorf("env should beat default: got %q", got)
	}
}

func TestResolveDataDirDefault(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	got, err := ResolveDataDir("", "")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != DefaultDataDirName {
		t.Errorf("expected CWD-relative %s, got %q", DefaultDataDirName, got)
	}
}
