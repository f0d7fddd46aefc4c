package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KAKEIBO_API_URL", "")
	t.Setenv("KAKEIBO_API_KEY", "ik_secret")
	t.Setenv("KAKEIBO_TIMEOUT_SECONDS", "")
	t.Setenv("KAKEIBO_DB_PATH", "")
	t.Setenv("KAKEIBO_LEDGER_ROOT", "")
	t.Setenv("KAKEIBO_LEDGER_CURRENCY", "")
	t.Setenv("DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Kakeibo.APIURL != "http://localhost:8080" {
		t.Errorf("APIURL = %q, want default", cfg.Kakeibo.APIURL)
	}
	if cfg.Kakeibo.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Kakeibo.Timeout)
	}
	if cfg.History.DBPath != "./kakeibo-history.db" {
		t.Errorf("DBPath = %q, want default", cfg.History.DBPath)
	}
	if cfg.Ledger.Root != "./ledger" {
		t.Errorf("Ledger.Root = %q, want default", cfg.Ledger.Root)
	}
	if cfg.Ledger.Currency != "JPY" {
		t.Errorf("Ledger.Currency = %q, want JPY", cfg.Ledger.Currency)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KAKEIBO_API_URL", "https://kakeibo.example.com")
	t.Setenv("KAKEIBO_API_KEY", "ik_secret")
	t.Setenv("KAKEIBO_TIMEOUT_SECONDS", "10")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Kakeibo.APIURL != "https://kakeibo.example.com" {
		t.Errorf("APIURL = %q", cfg.Kakeibo.APIURL)
	}
	if cfg.Kakeibo.APIKey != "ik_secret" {
		t.Errorf("APIKey = %q", cfg.Kakeibo.APIKey)
	}
	if cfg.Kakeibo.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Kakeibo.Timeout)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("KAKEIBO_TIMEOUT_SECONDS", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on invalid timeout")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Kakeibo: KakeiboConfig{APIURL: "https://kakeibo.example.com"},
	}

	if err := cfg.Validate("apiUrl"); err != nil {
		t.Errorf("Validate(apiUrl) failed: %v", err)
	}
	if err := cfg.Validate("apiUrl", "apiKey"); err == nil {
		t.Error("Validate should fail when apiKey is missing")
	}
}
