package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("tick_rate: 30\ndatabase:\n  path: /tmp/test.db\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	// Untouched fields fall back to defaults
	if cfg.SSH.Address != ":23234" {
		t.Errorf("SSH.Address = %q, expected default", cfg.SSH.Address)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: [nope"), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected a parse error for malformed YAML")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// With no custom path and no user/local file present in the test
	// working directory, Load falls through to the embedded YAML, which
	// must agree with Default().
	tmp := t.TempDir()
	oldWD, _ := os.Getwd()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("cannot chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })
	t.Setenv("HOME", tmp)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := Default()
	if cfg.TickRate != def.TickRate {
		t.Errorf("TickRate = %d, expected %d", cfg.TickRate, def.TickRate)
	}
	if cfg.Database.Path != def.Database.Path {
		t.Errorf("Database.Path = %q, expected %q", cfg.Database.Path, def.Database.Path)
	}
	if cfg.SSH.Address != def.SSH.Address {
		t.Errorf("SSH.Address = %q, expected %q", cfg.SSH.Address, def.SSH.Address)
	}
	if cfg.SSH.IdleTimeout() != def.SSH.IdleTimeout() {
		t.Errorf("SSH.IdleTimeout = %v, expected %v", cfg.SSH.IdleTimeout(), def.SSH.IdleTimeout())
	}
}
