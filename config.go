package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// --- Configuration Structures ---

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	GeoIP   GeoIPConfig   `yaml:"geoip"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// GeoIPConfig points at local GeoLite2 databases used to enrich verdicts
// for IP-literal hosts. Leave the paths empty to disable enrichment; the
// scorer itself never needs them.
type GeoIPConfig struct {
	CityDB string `yaml:"city_db"`
	ASNDB  string `yaml:"asn_db"`
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
	MaxRows int `yaml:"max_rows"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Server:  ServerConfig{Listen: ":8080"},
		Batch:   BatchConfig{Workers: 8, MaxRows: 10000},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Batch.Workers < 1 {
		cfg.Batch.Workers = 1
	}
	return cfg, nil
}

// InitLogger configures the global slog logger from the logging config.
func InitLogger(cfg LoggingConfig) {
	var lvl slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})))
}
