package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/berezovskyivalerii/refdatasvc/internal/domain/refdata"
)

type Config struct {
	// Symbols is the allow-list in concatenated BASEQUOTE form.
	Symbols    []string       `yaml:"symbols"`
	SymbolMode string         `yaml:"symbol_mode"` // raw | normalized
	Database   DatabaseConfig `yaml:"database"`
	HTTP       HTTPConfig     `yaml:"http"`
	Sync       SyncConfig     `yaml:"sync"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite3 | postgres
	Path   string `yaml:"path"`   // sqlite file
	DSN    string `yaml:"dsn"`    // postgres
}

type HTTPConfig struct {
	Port        string `yaml:"port"`
	AdminAPIKey string `yaml:"admin_api_key"`
}

type SyncConfig struct {
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
	Auto     bool          `yaml:"auto"`
}

func Default() Config {
	return Config{
		Symbols:    []string{"BTCUSDT", "ETHUSDT", "SOLUSDT", "LINKUSDT", "BNBUSDT", "AVAXUSDT"},
		SymbolMode: "raw",
		Database: DatabaseConfig{
			Driver: "sqlite3",
			Path:   "crypto_refdata.db",
		},
		HTTP: HTTPConfig{Port: "8080"},
		Sync: SyncConfig{
			Interval: 10 * time.Minute,
			Timeout:  2 * time.Minute,
			Auto:     true,
		},
	}
}

// Load layers defaults, the optional YAML file named by REFDATA_CONFIG
// and env overrides, then validates.
func Load() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("REFDATA_CONFIG")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	// ${VAR} references in the file resolve against the environment
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := getenv("SYNC_SYMBOLS"); v != "" {
		cfg.Symbols = splitCSV(v)
	}
	if v := getenv("SYMBOL_MODE"); v != "" {
		cfg.SymbolMode = v
	}
	if v := getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := getenv("DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := getenv("DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := getenv("PORT"); v != "" {
		cfg.HTTP.Port = v
	}
	if v := getenv("ADMIN_API_KEY"); v != "" {
		cfg.HTTP.AdminAPIKey = v
	}
	if d, err := time.ParseDuration(getenv("SYNC_INTERVAL")); err == nil && d > 0 {
		cfg.Sync.Interval = d
	}
	if d, err := time.ParseDuration(getenv("SYNC_TIMEOUT")); err == nil && d > 0 {
		cfg.Sync.Timeout = d
	}
}

func (c Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("config: empty symbol allow-list")
	}
	if _, err := refdata.ParseSymbolMode(c.SymbolMode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Database.Driver {
	case "sqlite3":
		if c.Database.Path == "" {
			return fmt.Errorf("config: sqlite3 driver needs database.path")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("config: postgres driver needs database.dsn")
		}
	default:
		return fmt.Errorf("config: unknown database.driver %q", c.Database.Driver)
	}
	return nil
}

func splitCSV(csv string) []string {
	var out []string
	for _, p := range strings.Split(csv, ",") {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(k string) string { return strings.TrimSpace(os.Getenv(k)) }
