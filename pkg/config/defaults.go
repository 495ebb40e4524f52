package config

// DefaultConfig returns the built-in defaults. Values from sitekeeper.yaml
// are merged over these; anything the file omits keeps its default.
func DefaultConfig() *Config {
	return &Config{
		GUIPort:                  8443,
		AgentPort:                9000,
		UseHTTPS:                 true,
		EnvironmentName:          "default",
		JournalRootPath:          "/var/lib/sitekeeper/journal",
		HeartbeatIntervalSeconds: 5,
		JWT: &JWTConfig{
			Issuer:                     "sitekeeper-master",
			Audience:                   "sitekeeper-agents",
			ExpiryMinutes:              60,
			RefreshTokenExpirationDays: 7,
		},
		Timeouts: &TimeoutConfig{
			ReadinessSeconds:         30,
			CancellationGraceSeconds: 15,
			FlushSeconds:             30,
		},
		Retention: &RetentionConfig{
			JournalRetentionDays:   30,
			CleanupIntervalMinutes: 60,
		},
		Database: &DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "sitekeeper",
			Database: "sitekeeper",
			SSLMode:  "disable",
		},
	}
}
