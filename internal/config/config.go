// Package config loads the server configuration from config.toml with
// environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Rules   RulesConfig   `toml:"rules"`
	Session SessionConfig `toml:"session"`
}

type ServerConfig struct {
	Addr     string `toml:"addr"`
	LogLevel string `toml:"log_level"`
}

// DataConfig is where battles.json and roster.json are kept.
type DataConfig struct {
	Dir string `toml:"dir"`
}

// RulesConfig points at a rules table. Empty means the built-in one.
type RulesConfig struct {
	Path string `toml:"path"`
}

type SessionConfig struct {
	IdleTimeout   string `toml:"idle_timeout"`
	SweepInterval string `toml:"sweep_interval"`
}

func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: ":8080", LogLevel: "info"},
		Data:    DataConfig{Dir: "data"},
		Session: SessionConfig{IdleTimeout: "12h", SweepInterval: "10m"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	for env, dst := range map[string]*string{
		"WARGAME_ADDR":           &c.Server.Addr,
		"WARGAME_LOG_LEVEL":      &c.Server.LogLevel,
		"WARGAME_DATA_DIR":       &c.Data.Dir,
		"WARGAME_RULES":          &c.Rules.Path,
		"WARGAME_IDLE_TIMEOUT":   &c.Session.IdleTimeout,
		"WARGAME_SWEEP_INTERVAL": &c.Session.SweepInterval,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is empty")
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is empty")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.IdleTimeout(); err != nil {
		return err
	}
	if _, err := c.SweepInterval(); err != nil {
		return err
	}
	return nil
}

func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.Server.LogLevel))); err != nil {
		return 0, fmt.Errorf("server.log_level: %w", err)
	}
	return l, nil
}

func (c *Config) IdleTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Session.IdleTimeout)
	if err != nil {
		return 0, fmt.Errorf("session.idle_timeout: %w", err)
	}
	return d, nil
}

func (c *Config) SweepInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Session.SweepInterval)
	if err != nil {
		return 0, fmt.Errorf("session.sweep_interval: %w", err)
	}
	return d, nil
}
