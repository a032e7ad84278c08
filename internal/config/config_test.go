package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromLookup_Defaults(t *testing.T) {
	got := FromLookup(func(string) (string, bool) { return "", false })
	if diff := cmp.Diff(Defaults(), got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestFromLookup_OverridesAndTrims(t *testing.T) {
	env := map[string]string{
		EnvAddr:           " :9090 ",
		EnvContent:        "site.yaml",
		EnvRenderer:       "nodes",
		EnvVariant:        "midnight",
		EnvAllowedOrigins: "https://a.example, ,https://b.example",
	}
	got := FromLookup(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	want := Config{
		Addr:           ":9090",
		Content:        "site.yaml",
		Renderer:       "nodes",
		Variant:        "midnight",
		AllowedOrigins: []string{"https://a.example", "https://b.example"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DotenvFileBelowEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	data := "LANDING_CONTENT=from-file.yaml\nLANDING_VARIANT=from-file\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(EnvVariant, "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Content != "from-file.yaml" {
		t.Fatalf("expected file value, got %q", cfg.Content)
	}
	if cfg.Variant != "from-env" {
		t.Fatalf("environment should win, got %q", cfg.Variant)
	}
	if _, ok := os.LookupEnv(EnvContent); ok {
		t.Fatalf("load must not mutate the process environment")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}
