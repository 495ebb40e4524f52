// Package config loads and validates the SiteKeeper master configuration
// from sitekeeper.yaml plus environment overrides.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize and
// used throughout the master.
type Config struct {
	configDir string

	// Web host settings (consumed by the external web host, carried here
	// so one file configures the whole master).
	GUIPort   int  `yaml:"gui_port"`
	AgentPort int  `yaml:"agent_port"`
	UseHTTPS  bool `yaml:"use_https"`

	// EnvironmentName labels this master's fleet in logs and journal records.
	EnvironmentName string `yaml:"environment_name"`

	// JournalRootPath is the root under which per-action journal streams are
	// named. The on-disk serializer itself lives outside the core.
	JournalRootPath string `yaml:"journal_root_path"`

	// HeartbeatIntervalSeconds is the cadence agents are expected to report.
	HeartbeatIntervalSeconds int `yaml:"heartbeat_interval_seconds"`

	// OfflineThresholdSeconds marks an agent Offline when its last heartbeat
	// is older than this. Zero means 3x the heartbeat interval.
	OfflineThresholdSeconds int `yaml:"offline_threshold_seconds"`

	JWT       *JWTConfig       `yaml:"jwt"`
	Timeouts  *TimeoutConfig   `yaml:"timeouts"`
	Database  *DatabaseConfig  `yaml:"database"`
	Retention *RetentionConfig `yaml:"retention"`
}

// JWTConfig holds agent token settings.
type JWTConfig struct {
	Issuer                     string `yaml:"issuer"`
	Audience                   string `yaml:"audience"`
	Secret                     string `yaml:"secret"`
	ExpiryMinutes              int    `yaml:"expiry_minutes"`
	RefreshTokenExpirationDays int    `yaml:"refresh_token_expiration_days"`
}

// TimeoutConfig holds the protocol timeouts of the node-action coordinator
// and the log-flush barrier. All overridable so tests can shrink them.
type TimeoutConfig struct {
	ReadinessSeconds         int `yaml:"readiness_seconds"`
	CancellationGraceSeconds int `yaml:"cancellation_grace_seconds"`
	FlushSeconds             int `yaml:"flush_seconds"`
}

// DatabaseConfig holds the journal database connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// RetentionConfig holds journal retention settings.
type RetentionConfig struct {
	JournalRetentionDays   int `yaml:"journal_retention_days"`
	CleanupIntervalMinutes int `yaml:"cleanup_interval_minutes"`
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// HeartbeatInterval returns the expected agent heartbeat cadence.
func (c *Config) HeartbeatInterval() time.Duration {
	return time.Duration(c.HeartbeatIntervalSeconds) * time.Second
}

// OfflineThreshold returns the heartbeat age past which an agent is marked
// Offline. Defaults to 3x the heartbeat interval.
func (c *Config) OfflineThreshold() time.Duration {
	if c.OfflineThresholdSeconds > 0 {
		return time.Duration(c.OfflineThresholdSeconds) * time.Second
	}
	return 3 * c.HeartbeatInterval()
}

// ReadinessTimeout returns how long the coordinator waits for readiness
// reports before timing tasks out.
func (c *Config) ReadinessTimeout() time.Duration {
	return time.Duration(c.Timeouts.ReadinessSeconds) * time.Second
}

// CancellationGrace returns how long cancelled tasks may take to confirm.
func (c *Config) CancellationGrace() time.Duration {
	return time.Duration(c.Timeouts.CancellationGraceSeconds) * time.Second
}

// FlushTimeout returns the advisory deadline of the log-flush barrier.
func (c *Config) FlushTimeout() time.Duration {
	return time.Duration(c.Timeouts.FlushSeconds) * time.Second
}

// AccessTokenTTL returns the agent access token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpiryMinutes) * time.Minute
}

// RefreshTokenTTL returns the agent refresh token lifetime.
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTokenExpirationDays) * 24 * time.Hour
}

// JournalRetention returns how long journal records are kept before the
// retention sweeper purges them.
func (c *Config) JournalRetention() time.Duration {
	return time.Duration(c.Retention.JournalRetentionDays) * 24 * time.Hour
}

// CleanupInterval returns the cadence of the retention sweeper.
func (c *Config) CleanupInterval() time.Duration {
	return time.Duration(c.Retention.CleanupIntervalMinutes) * time.Minute
}
