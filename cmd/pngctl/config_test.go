package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/pngctl/internal/config"
	"github.com/danmuck/pngctl/internal/payload"
	"github.com/danmuck/pngctl/internal/stash"
	"github.com/danmuck/pngctl/internal/testutil/testlog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadServiceConfigTemplate(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, config.Template())

	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != stash.DefaultServiceConfig() {
		t.Fatalf("template differs from defaults: %+v", cfg)
	}
}

func TestLoadServiceConfigOverrides(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
output = "out/hidden.png"
compress = true
format = "HEX"
max_payload_bytes = 1024
max_input_bytes = 4096
file_mode = "0600"
`)

	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Output != "out/hidden.png" {
		t.Fatalf("unexpected output: %q", cfg.Output)
	}
	if !cfg.Compress {
		t.Fatalf("expected compress enabled")
	}
	if cfg.Format != payload.FormatHex {
		t.Fatalf("unexpected format: %q", cfg.Format)
	}
	if cfg.MaxPayloadBytes != 1024 {
		t.Fatalf("unexpected max payload: %d", cfg.MaxPayloadBytes)
	}
	if cfg.MaxInputBytes != 4096 {
		t.Fatalf("unexpected max input: %d", cfg.MaxInputBytes)
	}
	if cfg.FileMode != 0o600 {
		t.Fatalf("unexpected file mode: %o", cfg.FileMode)
	}
}

func TestLoadServiceConfigPartial(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
compress = true
`)

	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	def := stash.DefaultServiceConfig()
	if !cfg.Compress {
		t.Fatalf("expected compress enabled")
	}
	if cfg.Output != def.Output || cfg.Format != def.Format {
		t.Fatalf("undefined keys should keep defaults: %+v", cfg)
	}
}

func TestLoadServiceConfigBadValues(t *testing.T) {
	testlog.Start(t)
	for _, content := range []string{
		`format = "base64"`,
		`max_payload_bytes = 0`,
		`max_input_bytes = -1`,
		`file_mode = "rw"`,
		`output = [`,
	} {
		path := writeConfig(t, content)
		if _, err := loadServiceConfig(path); err == nil {
			t.Fatalf("expected error for %q", content)
		}
	}
}

func TestLoadServiceConfigMissingFile(t *testing.T) {
	testlog.Start(t)
	if _, err := loadServiceConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestResolveConfigPath(t *testing.T) {
	testlog.Start(t)
	flagPath := writeConfig(t, "")
	envPath := writeConfig(t, "")
	t.Setenv(config.EnvConfigPath, envPath)

	got, err := resolveConfigPath(flagPath)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != flagPath {
		t.Fatalf("flag should win: got %q", got)
	}

	got, err = resolveConfigPath("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != envPath {
		t.Fatalf("env should be used: got %q", got)
	}
}
