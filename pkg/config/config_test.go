package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, "http://localhost:3000/api", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Snapshots.CacheTTL)
	assert.False(t, cfg.Snapshots.CacheEnabled)
	assert.Equal(t, 1, cfg.Invalidation.Workers)
	assert.Equal(t, 64, cfg.Invalidation.BufferSize)
	assert.True(t, cfg.Exports.Enabled)
	assert.False(t, cfg.Announcements.Enabled)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("BACKEND_BASE_URL", "https://pm.example.com/api/")
	v.Set("BACKEND_TIMEOUT", "not-a-duration")
	v.Set("SNAPSHOT_CACHE_TTL", "30s")
	v.Set("ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")

	cfg := fromViper(v)

	assert.Equal(t, "https://pm.example.com/api", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Snapshots.CacheTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}
