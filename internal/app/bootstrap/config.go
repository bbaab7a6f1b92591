package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration.
type Config struct {
	ServiceID string

	HTTPPort int
	GRPCPort int

	LogLevel slog.Level

	DefaultListLimit  int
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// configFile mirrors configs/default.yaml.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
	} `yaml:"service"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	API struct {
		DefaultListLimit         int `yaml:"default_list_limit"`
		ReadHeaderTimeoutSeconds int `yaml:"read_header_timeout_seconds"`
		ShutdownTimeoutSeconds   int `yaml:"shutdown_timeout_seconds"`
	} `yaml:"api"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:         "Fantasy-Team-Service",
		HTTPPort:          8000,
		GRPCPort:          9090,
		LogLevel:          slog.LevelInfo,
		DefaultListLimit:  2,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Log.Level != "" {
			level, levelErr := parseLevel(f.Log.Level)
			if levelErr != nil {
				return Config{}, levelErr
			}
			cfg.LogLevel = level
		}
		if f.API.DefaultListLimit > 0 {
			cfg.DefaultListLimit = f.API.DefaultListLimit
		}
		if f.API.ReadHeaderTimeoutSeconds > 0 {
			cfg.ReadHeaderTimeout = time.Duration(f.API.ReadHeaderTimeoutSeconds) * time.Second
		}
		if f.API.ShutdownTimeoutSeconds > 0 {
			cfg.ShutdownTimeout = time.Duration(f.API.ShutdownTimeoutSeconds) * time.Second
		}
	}

	cfg.ServiceID = envOrDefault("SERVICE_ID", cfg.ServiceID)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)
	cfg.DefaultListLimit = envInt("DEFAULT_LIST_LIMIT", cfg.DefaultListLimit)
	cfg.ShutdownTimeout = time.Duration(envInt("SHUTDOWN_TIMEOUT_SECONDS", int(cfg.ShutdownTimeout.Seconds()))) * time.Second
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, levelErr := parseLevel(raw)
		if levelErr != nil {
			return Config{}, levelErr
		}
		cfg.LogLevel = level
	}

	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return Config{}, fmt.Errorf("invalid http port %d", cfg.HTTPPort)
	}
	if cfg.GRPCPort < 1 || cfg.GRPCPort > 65535 {
		return Config{}, fmt.Errorf("invalid grpc port %d", cfg.GRPCPort)
	}
	return cfg, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", raw, err)
	}
	return level, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
