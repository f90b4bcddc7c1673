package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := Build("", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if cfg.CurrencySymbol != "₦" {
		t.Errorf("expected default currency symbol ₦, got %q", cfg.CurrencySymbol)
	}
	if cfg.TopCategories != 5 {
		t.Errorf("expected default top_categories 5, got %d", cfg.TopCategories)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.Port)
	}
}

func TestBuildFromFile(t *testing.T) {
	content := "currency_symbol: \"$\"\ntop_categories: 3\nport: \"8080\"\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.CurrencySymbol != "$" || cfg.TopCategories != 3 || cfg.Port != "8080" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestBuildFlagOverrides(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("top", 0, "")
	flags.String("currency", "", "")
	if err := flags.Parse([]string{"--top=2", "--currency=$"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Build("", flags)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.TopCategories != 2 {
		t.Errorf("expected flag override top_categories=2, got %d", cfg.TopCategories)
	}
	if cfg.CurrencySymbol != "$" {
		t.Errorf("expected flag override currency=$, got %q", cfg.CurrencySymbol)
	}
}

func TestBuildMissingExplicitFile(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
