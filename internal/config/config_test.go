package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if len(cfg.Symbols) != 6 {
		t.Fatalf("want 6 default symbols, got %d", len(cfg.Symbols))
	}
	if cfg.SymbolMode != "raw" || cfg.Database.Driver != "sqlite3" || cfg.Database.Path != "crypto_refdata.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SYNC_SYMBOLS", "btcusdt, ethusdt")
	t.Setenv("SYMBOL_MODE", "normalized")
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("SYNC_INTERVAL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "BTCUSDT" {
		t.Fatalf("symbols: %v", cfg.Symbols)
	}
	if cfg.SymbolMode != "normalized" || cfg.Database.Path != "/tmp/x.db" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Sync.Interval != 30*time.Minute {
		t.Fatalf("interval: %v", cfg.Sync.Interval)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refdata.yaml")
	body := `
symbols: [BTCUSDT, ETHUSDT]
symbol_mode: normalized
database:
  driver: postgres
  dsn: postgres://${PGUSER}@localhost/refdata
sync:
  interval: 5m
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REFDATA_CONFIG", path)
	t.Setenv("PGUSER", "svc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.DSN != "postgres://svc@localhost/refdata" {
		t.Fatalf("yaml/env expansion: %+v", cfg.Database)
	}
	if cfg.Sync.Interval != 5*time.Minute {
		t.Fatalf("interval: %v", cfg.Sync.Interval)
	}
	// defaults survive for fields the file does not set
	if cfg.HTTP.Port != "8080" {
		t.Fatalf("port default lost: %q", cfg.HTTP.Port)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cfg := Default()
	cfg.SymbolMode = "pretty"
	if err := cfg.Validate(); err == nil {
		t.Fatal("bad symbol_mode must fail")
	}

	cfg = Default()
	cfg.Database.Driver = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Fatal("postgres without dsn must fail")
	}

	cfg = Default()
	cfg.Symbols = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty allow-list must fail")
	}
}
