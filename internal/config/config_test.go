package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Data.Dir != "data" || cfg.Rules.Path != "" {
		t.Errorf("defaults = %+v", cfg)
	}
	if d, _ := cfg.IdleTimeout(); d != 12*time.Hour {
		t.Errorf("idle timeout = %v", d)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[server]
addr = ":9000"
log_level = "debug"

[data]
dir = "/var/lib/wargame"

[session]
idle_timeout = "1h"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WARGAME_DATA_DIR", "/tmp/override")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Data.Dir != "/tmp/override" {
		t.Errorf("data dir = %q, env override lost", cfg.Data.Dir)
	}
	if l, _ := cfg.LogLevel(); l != slog.LevelDebug {
		t.Errorf("log level = %v", l)
	}
	if d, _ := cfg.SweepInterval(); d != 10*time.Minute {
		t.Errorf("sweep interval default lost: %v", d)
	}
}

func TestLoad_SessionEnv(t *testing.T) {
	t.Setenv("WARGAME_IDLE_TIMEOUT", "30m")
	t.Setenv("WARGAME_SWEEP_INTERVAL", "45s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := cfg.IdleTimeout(); d != 30*time.Minute {
		t.Errorf("idle timeout = %v", d)
	}
	if d, _ := cfg.SweepInterval(); d != 45*time.Second {
		t.Errorf("sweep interval = %v", d)
	}

	t.Setenv("WARGAME_SWEEP_INTERVAL", "soon")
	if _, err := Load(""); err == nil {
		t.Error("bad sweep interval accepted")
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax":  "[server\naddr=",
		"level":   "[server]\nlog_level = \"loud\"\n",
		"timeout": "[session]\nidle_timeout = \"soon\"\n",
	}
	for name, doc := range cases {
		path := filepath.Join(dir, name+".toml")
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
