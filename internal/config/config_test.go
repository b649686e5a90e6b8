package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GATEWAY_LATENCY_LOGIN", "5ms")
	t.Setenv("MENTORSHIP_STRICT_TRANSITIONS", "false")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, SessionDriverSQLite, cfg.Session.Driver)
	assert.Equal(t, "5ms", cfg.Gateway.Latency.Login)
	assert.False(t, cfg.Mentorship.StrictTransitions)
	assert.Equal(t, 50000.0, cfg.Dashboard.FundraisingTarget)
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  port: "9090"
jwt:
  secret: from-file
gateway:
  latency:
    disabled: true
    create_donation: 10ms
session:
  driver: memory
kafka:
  enabled: true
  brokers: "a:9092, b:9092"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Gateway.Latency.Disabled)
	assert.Equal(t, map[string]string{"create_donation": "10ms"}, cfg.Gateway.Latency.Durations())
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing secret", "session:\n  driver: memory\n"},
		{"bad latency", "jwt:\n  secret: s\ngateway:\n  latency:\n    login: soon\n"},
		{"unknown driver", "jwt:\n  secret: s\nsession:\n  driver: floppy\n"},
		{"redis without addr", "jwt:\n  secret: s\nsession:\n  driver: redis\n"},
		{"kafka without brokers", "jwt:\n  secret: s\nkafka:\n  enabled: true\n"},
		{"bcrypt cost too low", "jwt:\n  secret: s\nsecurity:\n  bcrypt_cost: 3\n"},
		{"email without sender", "jwt:\n  secret: s\nemail:\n  enabled: true\n  from_email: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "config.yaml", tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_BadEnvNamesField(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SMTP_PORT", "twenty-five")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email.port (SMTP_PORT)")
}

func TestLoadConfig_EnvOverridesNestedSections(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_ENABLED", "true")
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2525, cfg.Email.Port)
	assert.True(t, cfg.Email.Enabled)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
}

func TestLoadEnvFiles(t *testing.T) {
	path := writeFile(t, ".env", "ALUMNI_TEST_VALUE=from-dotenv\n")
	t.Setenv("APP_ENV", "dev")
	os.Unsetenv("ALUMNI_TEST_VALUE")
	t.Cleanup(func() { os.Unsetenv("ALUMNI_TEST_VALUE") })

	require.NoError(t, LoadEnvFiles(path, filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, "from-dotenv", GetEnv("ALUMNI_TEST_VALUE", ""))
}

func TestLoadEnvFiles_SkippedInProd(t *testing.T) {
	path := writeFile(t, ".env", "ALUMNI_PROD_VALUE=x\n")
	t.Setenv("APP_ENV", "prod")
	os.Unsetenv("ALUMNI_PROD_VALUE")

	require.NoError(t, LoadEnvFiles(path))
	assert.Equal(t, "unset", GetEnv("ALUMNI_PROD_VALUE", "unset"))
}
