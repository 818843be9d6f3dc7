package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults for skillscand.
const (
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "info"
	DefaultBodyLimit = 1 << 20
)

// Environment keys read by Load. They override skillscand.yaml.
const (
	EnvAddr      = "SKILLSCAN_ADDR"
	EnvLogLevel  = "SKILLSCAN_LOG_LEVEL"
	EnvBodyLimit = "SKILLSCAN_BODY_LIMIT"
	EnvJWTSecret = "SKILLSCAN_JWT_SECRET"
	EnvJWTIssuer = "SKILLSCAN_JWT_ISSUER"
)

// Config is the in-memory representation of ~/.skillscan/skillscand.yaml.
type Config struct {
	Addr      string `yaml:"addr"`
	LogLevel  string `yaml:"log_level"`
	BodyLimit int    `yaml:"body_limit"`
	JWTSecret string `yaml:"jwt_secret,omitempty"`
	JWTIssuer string `yaml:"jwt_issuer,omitempty"`
}

// StateDir returns the absolute path to ~/.skillscan/.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".skillscan"), nil
}

// ConfigPath returns the absolute path to ~/.skillscan/skillscand.yaml.
func ConfigPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "skillscand.yaml"), nil
}

// LockPath returns the lock file held by a running skillscand.
func LockPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "skillscand.lock"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config written by skillscand init.
func DefaultConfig() *Config {
	return &Config{
		Addr:      DefaultAddr,
		LogLevel:  DefaultLogLevel,
		BodyLimit: DefaultBodyLimit,
	}
}

// Load builds the effective configuration. Precedence, highest first:
// process environment, ~/.skillscan/.env, the YAML file, defaults.
// path selects the YAML file; "" means ~/.skillscan/skillscand.yaml, which
// may be absent. An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	dotenv, err := LoadDotEnv()
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, dotenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, dotenv map[string]string) error {
	get := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
	if v := get(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := get(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := get(EnvJWTSecret); v != "" {
		cfg.JWTSecret = v
	}
	if v := get(EnvJWTIssuer); v != "" {
		cfg.JWTIssuer = v
	}
	if v := get(EnvBodyLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvBodyLimit, v, err)
		}
		cfg.BodyLimit = n
	}
	return nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalidConfig)
	}
	if c.BodyLimit <= 0 {
		return fmt.Errorf("%w: body_limit must be positive, got %d", ErrInvalidConfig, c.BodyLimit)
	}
	if c.JWTIssuer != "" && c.JWTSecret == "" {
		return fmt.Errorf("%w: jwt_issuer is set but jwt_secret is empty", ErrInvalidConfig)
	}
	return nil
}

// AuthEnabled reports whether the skill endpoints require a bearer token.
func (c *Config) AuthEnabled() bool { return c.JWTSecret != "" }

// Save marshals cfg and writes it to path.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
