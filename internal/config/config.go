package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all notez configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

type ServerConfig struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 37808,
		},
		Database: DatabaseConfig{
			Path: "", // resolved at runtime via prefs.DefaultDBPath()
		},
	}
}

// DefaultPath returns the default config file path: ~/.notez/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".notez", "config.yaml"), nil
}

// Load builds the configuration in layers: defaults, then the YAML file at
// path (missing file is fine), then NOTEZ_* environment variables. A .env
// file in the working directory is read into the environment first.
func Load(path string) (Config, error) {
	cfg := Default()

	// Missing .env is the normal case.
	_ = godotenv.Load()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays NOTEZ_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("NOTEZ_BIND"); v != "" {
		cfg.Server.Bind = v
	}
	if v := os.Getenv("NOTEZ_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("NOTEZ_DB"); v != "" {
		cfg.Database.Path = v
	}
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
