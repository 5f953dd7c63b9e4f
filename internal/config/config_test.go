package config

import (
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_BASE_URL", "")
	t.Setenv("PHOTO_MAX_MB", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.DatabaseDSN == "" {
		t.Fatalf("DatabaseDSN default must be non-empty")
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("GeminiModel default expected 'gemini-1.5-flash', got %q", cfg.GeminiModel)
	}
	if cfg.GeminiBaseURL != "https://generativelanguage.googleapis.com" {
		t.Fatalf("GeminiBaseURL default wrong: %q", cfg.GeminiBaseURL)
	}
	if cfg.PhotoMaxSizeMB != 10 {
		t.Fatalf("PhotoMaxSizeMB default expected 10, got %d", cfg.PhotoMaxSizeMB)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("GEMINI_API_KEY", "k-123")
	t.Setenv("PHOTO_MAX_MB", "5")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.GeminiAPIKey != "k-123" {
		t.Fatalf("GeminiAPIKey expected from env 'k-123', got %q", cfg.GeminiAPIKey)
	}
	if cfg.PhotoMaxSizeMB != 5 {
		t.Fatalf("PhotoMaxSizeMB expected 5, got %d", cfg.PhotoMaxSizeMB)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}
