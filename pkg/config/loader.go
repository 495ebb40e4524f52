package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// configFileName is the single configuration file the master reads.
const configFileName = "sitekeeper.yaml"

// Initialize loads, merges, and validates configuration from configDir.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read sitekeeper.yaml (optional — defaults apply when absent)
//  2. Expand {{.VAR}} environment references
//  3. Parse YAML and merge over built-in defaults
//  4. Validate the merged result
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := DefaultConfig()
	cfg.configDir = configDir

	path := filepath.Join(configDir, configFileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warn("No configuration file found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(ExpandEnv(data), &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"environment", cfg.EnvironmentName,
		"agent_port", cfg.AgentPort,
		"gui_port", cfg.GUIPort,
		"heartbeat_interval", cfg.HeartbeatInterval(),
		"offline_threshold", cfg.OfflineThreshold())

	return cfg, nil
}

// validate checks the merged configuration for values the master cannot
// operate with.
func validate(cfg *Config) error {
	if cfg.AgentPort <= 0 || cfg.AgentPort > 65535 {
		return fmt.Errorf("agent_port %d out of range", cfg.AgentPort)
	}
	if cfg.GUIPort <= 0 || cfg.GUIPort > 65535 {
		return fmt.Errorf("gui_port %d out of range", cfg.GUIPort)
	}
	if cfg.HeartbeatIntervalSeconds <= 0 {
		return fmt.Errorf("heartbeat_interval_seconds must be positive, got %d", cfg.HeartbeatIntervalSeconds)
	}
	if cfg.OfflineThresholdSeconds > 0 && cfg.OfflineThresholdSeconds < cfg.HeartbeatIntervalSeconds {
		return fmt.Errorf("offline_threshold_seconds %d is below heartbeat_interval_seconds %d",
			cfg.OfflineThresholdSeconds, cfg.HeartbeatIntervalSeconds)
	}
	if cfg.Timeouts == nil || cfg.Timeouts.ReadinessSeconds <= 0 ||
		cfg.Timeouts.CancellationGraceSeconds <= 0 || cfg.Timeouts.FlushSeconds <= 0 {
		return fmt.Errorf("timeouts must all be positive")
	}
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required (set SITEKEEPER_JWT_SECRET and reference it from sitekeeper.yaml)")
	}
	if cfg.JWT.ExpiryMinutes <= 0 || cfg.JWT.RefreshTokenExpirationDays <= 0 {
		return fmt.Errorf("jwt expiry settings must be positive")
	}
	if cfg.JournalRootPath == "" {
		return fmt.Errorf("journal_root_path is required")
	}
	if cfg.Retention == nil || cfg.Retention.JournalRetentionDays <= 0 ||
		cfg.Retention.CleanupIntervalMinutes <= 0 {
		return fmt.Errorf("retention settings must be positive")
	}
	return nil
}
