package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "PORT", "ROLE_CACHE_TTL", "ES_NEWS_INDEX", "ELASTICSEARCH_ADDRS", "DEBUG_METRICS_ENABLED"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "clubactiv", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.RoleCacheTTL)
	assert.Equal(t, "news", cfg.ESNewsIndex)
	assert.Empty(t, cfg.ESAddrs())
	assert.True(t, cfg.DebugMetricsEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_USER", "club")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "activ")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("ROLE_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("HTTP_LOG_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, 30*time.Second, cfg.RoleCacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.True(t, cfg.HTTPLogEnabled)
	assert.Equal(t, "postgres://club:secret@db:5432/activ?sslmode=disable", cfg.PostgresDSN())
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "one")
	t.Setenv("ROLE_CACHE_TTL", "soon")
	t.Setenv("DEBUG_METRICS_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 5*time.Minute, cfg.RoleCacheTTL)
	assert.True(t, cfg.DebugMetricsEnabled)
}
