package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a sitekeeper.yaml with the given content into a temp dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o600)
	require.NoError(t, err)
	return dir
}

func TestInitializeDefaults(t *testing.T) {
	dir := writeConfig(t, `
jwt:
  secret: test-secret
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.AgentPort)
	assert.Equal(t, 5, cfg.HeartbeatIntervalSeconds)
	assert.Equal(t, 30*time.Second, cfg.ReadinessTimeout())
	assert.Equal(t, 15*time.Second, cfg.CancellationGrace())
	assert.Equal(t, 30*time.Second, cfg.FlushTimeout())
	// 3x heartbeat when no explicit threshold is configured
	assert.Equal(t, 15*time.Second, cfg.OfflineThreshold())
}

func TestInitializeOverrides(t *testing.T) {
	dir := writeConfig(t, `
agent_port: 9100
environment_name: staging
heartbeat_interval_seconds: 10
offline_threshold_seconds: 45
timeouts:
  readiness_seconds: 5
  cancellation_grace_seconds: 2
  flush_seconds: 3
jwt:
  secret: test-secret
  expiry_minutes: 30
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.AgentPort)
	assert.Equal(t, "staging", cfg.EnvironmentName)
	assert.Equal(t, 45*time.Second, cfg.OfflineThreshold())
	assert.Equal(t, 5*time.Second, cfg.ReadinessTimeout())
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL())
	// defaults survive partial jwt override
	assert.Equal(t, "sitekeeper-master", cfg.JWT.Issuer)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("SITEKEEPER_JWT_SECRET", "from-env")
	dir := writeConfig(t, `
jwt:
  secret: "{{.SITEKEEPER_JWT_SECRET}}"
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestInitializeValidation(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		dir := writeConfig(t, `environment_name: prod`)
		_, err := Initialize(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("offline threshold below heartbeat", func(t *testing.T) {
		dir := writeConfig(t, `
heartbeat_interval_seconds: 30
offline_threshold_seconds: 10
jwt:
  secret: s
`)
		_, err := Initialize(dir)
		require.Error(t, err)
	})

	t.Run("missing file falls back to defaults but still validates", func(t *testing.T) {
		_, err := Initialize(t.TempDir())
		require.Error(t, err) // no jwt secret anywhere
	})
}
