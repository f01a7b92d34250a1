package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/ninja-runner/internal/config"
)

func TestLoadGameSetup(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "runner.yaml")
	if err := os.WriteFile(cfgPath, []byte("policy:\n  restart: auto\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	setup, err := loadGameSetup(cfgPath, "compact", dir)
	if err != nil {
		t.Fatalf("loadGameSetup() failed: %v", err)
	}
	if setup.config.Policy.Restart != config.RestartAuto {
		t.Errorf("restart policy = %q, expected auto", setup.config.Policy.Restart)
	}
	if setup.formFactor != config.FormFactorCompact {
		t.Errorf("form factor = %q, expected compact", setup.formFactor)
	}
	if setup.assets == nil {
		t.Fatal("assets dir should produce a file system")
	}
	if _, err := fs.Stat(setup.assets, "runner.yaml"); err != nil {
		t.Errorf("assets file system should be rooted at the dir: %v", err)
	}
}

func TestLoadGameSetupDefaults(t *testing.T) {
	setup, err := loadGameSetup("", "", "")
	if err != nil {
		t.Fatalf("loadGameSetup() failed: %v", err)
	}
	if setup.formFactor != config.FormFactorAuto {
		t.Errorf("form factor = %q, expected auto", setup.formFactor)
	}
	if setup.assets != nil {
		t.Error("no assets dir should leave the embedded sprites in place")
	}
}

func TestLoadGameSetupErrors(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		formFactor string
	}{
		{"missing config", filepath.Join(t.TempDir(), "nope.yaml"), "auto"},
		{"bad form factor", "", "tablet"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadGameSetup(tc.configPath, tc.formFactor, ""); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:2200":     "2200",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, expected := range tests {
		if got := portOf(addr); got != expected {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, expected)
		}
	}
}

func TestWriteDefaultConfigRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDefaultConfig(&buf); err != nil {
		t.Fatalf("writeDefaultConfig() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	setup, err := loadGameSetup(path, "auto", "")
	if err != nil {
		t.Fatalf("printed config does not load: %v", err)
	}
	if setup.config != config.DefaultRunnerConfig() {
		t.Errorf("printed config differs from defaults: %+v", setup.config)
	}
}
