// Package config resolves CLI and server settings from the environment, an
// optional dotenv file and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvAddr           = "LANDING_ADDR"
	EnvContent        = "LANDING_CONTENT"
	EnvRenderer       = "LANDING_RENDERER"
	EnvVariant        = "LANDING_VARIANT"
	EnvAllowedOrigins = "LANDING_ALLOWED_ORIGINS"
)

// DefaultEnvFile is read when Load receives no explicit files.
const DefaultEnvFile = ".env"

type Config struct {
	Addr     string
	Content  string
	Renderer string
	Variant  string
	// AllowedOrigins enables CORS on the HTTP server when non-empty.
	AllowedOrigins []string
}

func Defaults() Config {
	return Config{
		Addr:     ":8080",
		Renderer: "vanilla",
	}
}

// Load reads dotenv files without mutating the process environment and
// resolves the configuration. A missing default file is not an error; a
// missing explicit file is.
func Load(files ...string) (Config, error) {
	fileValues := map[string]string{}

	explicit := len(files) > 0
	if !explicit {
		files = []string{DefaultEnvFile}
	}
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: read %q: %w", file, err)
		}
		for key, value := range values {
			fileValues[key] = value
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := fileValues[key]
		return value, ok
	}), nil
}

// FromLookup resolves the configuration through lookup, falling back to
// Defaults for unset or blank keys.
func FromLookup(lookup func(string) (string, bool)) Config {
	cfg := Defaults()
	if lookup == nil {
		return cfg
	}

	get := func(key string) string {
		value, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(value)
	}

	if v := get(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := get(EnvContent); v != "" {
		cfg.Content = v
	}
	if v := get(EnvRenderer); v != "" {
		cfg.Renderer = v
	}
	if v := get(EnvVariant); v != "" {
		cfg.Variant = v
	}
	cfg.AllowedOrigins = splitList(get(EnvAllowedOrigins))
	return cfg
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
