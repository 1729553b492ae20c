package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRateRule(t *testing.T) {
	rule, err := ParseRateRule("60/1m")
	require.NoError(t, err)
	assert.Equal(t, 60, rule.Limit)
	assert.Equal(t, time.Minute, rule.Interval)

	rule, err = ParseRateRule(" 5 / 15m ")
	require.NoError(t, err)
	assert.Equal(t, 5, rule.Limit)
	assert.Equal(t, 15*time.Minute, rule.Interval)

	for _, bad := range []string{"", "60", "x/1m", "0/1m", "10/abc", "10/-1s"} {
		_, err := ParseRateRule(bad)
		assert.Error(t, err, bad)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("APP_URI", "")
	t.Setenv("RATE_LIMIT_TRACK", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8888", cfg.AppPort)
	assert.Equal(t, "PortfolioDB", cfg.MongoDB)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, RateRule{Limit: 60, Interval: time.Minute}, cfg.RateLimitTrack)
	assert.Equal(t, RateRule{Limit: 5, Interval: 15 * time.Minute}, cfg.RateLimitLogin)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("RATE_LIMIT_TRACK", "10/30s")
	t.Setenv("APP_ENV", "development")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, RateRule{Limit: 10, Interval: 30 * time.Second}, cfg.RateLimitTrack)
	assert.True(t, cfg.IsDevelopment())
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_ANALYTICS", "lots")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT_ANALYTICS", "")
	t.Setenv("SMTP_PORT", "abc")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestFromEnvTrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, 173.245.48.0/20 ,,")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "173.245.48.0/20"}, cfg.TrustedProxies)
}

func TestValidateRejectsDefaultJWTSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "production")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "a-long-random-production-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidateAllowsDefaultJWTSecretInDevelopment(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "development")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}
