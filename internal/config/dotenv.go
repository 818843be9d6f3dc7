package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvPath returns the absolute path to the dotenv file (~/.skillscan/.env).
func DotEnvPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadDotEnv reads ~/.skillscan/.env and returns key/value pairs.
// A missing file yields an empty map.
func LoadDotEnv() (map[string]string, error) {
	p, err := DotEnvPath()
	if err != nil {
		return nil, err
	}
	m, err := godotenv.Read(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return m, nil
}

// EnsureDotEnvTemplate creates ~/.skillscan/.env if it does not already exist.
//
// The template lists the secrets skillscand reads with empty values; they are
// kept out of skillscand.yaml.
func EnsureDotEnvTemplate() (bool, error) {
	p, err := DotEnvPath()
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(p); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}

	body := "" +
		EnvJWTSecret + "=\n" +
		EnvJWTIssuer + "=\n"

	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		return false, fmt.Errorf("cannot write dotenv template %s: %w", p, err)
	}
	return true, nil
}
