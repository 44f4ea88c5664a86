package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/partner-portal/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "partner", cfg.Tenant.DefaultID)
	assert.Empty(t, cfg.Tenant.ID)
	assert.Equal(t, "access_token", cfg.Auth.CookieName)
	assert.Equal(t, 30*time.Second, cfg.Backend.HealthInterval)
	assert.Equal(t, time.Duration(0), cfg.Session.CacheTTL)
	assert.Equal(t, config.SourceEmbedded, cfg.Source.Kind)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Equal(t, int32(4), cfg.DB.MaxConns)
	assert.Equal(t, int32(0), cfg.DB.MinConns)
	assert.False(t, cfg.DB.PreferIPv4)
}

func TestFromViper_CookieSeguraPorDefectoEnProduccion(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Auth.CookieSecure)

	// El valor explícito gana sobre el entorno.
	v.Set("AUTH_COOKIE_SECURE", false)
	cfg, err = config.FromViper(v)
	require.NoError(t, err)
	assert.False(t, cfg.Auth.CookieSecure)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("TENANT_ID", "restaurante")
	v.Set("BACKEND_URL", "https://api.example.com/")
	v.Set("SESSION_CACHE_TTL_SECONDS", "45")
	v.Set("HTTP_PORT", "9090")
	v.Set("CONFIG_SOURCE", "POSTGRES")
	v.Set("AUTH_COOKIE_SECURE", true)
	v.Set("APP_ENV", "Production")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "restaurante", cfg.Tenant.ID)
	assert.Equal(t, "https://api.example.com", cfg.Backend.URL)
	assert.Equal(t, 45*time.Second, cfg.Session.CacheTTL)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.SourcePostgres, cfg.Source.Kind)
	assert.True(t, cfg.Auth.CookieSecure)
	assert.True(t, cfg.IsProduction())
}

func TestFromViper_Invalidos(t *testing.T) {
	cases := map[string]any{
		"CONFIG_SOURCE":             "consul",
		"DEFAULT_TENANT_ID":         "",
		"HEALTH_INTERVAL_SECONDS":   "0",
		"SESSION_CACHE_TTL_SECONDS": "-5",
		"DB_MAX_CONNS":              "0",
		"DB_MIN_CONNS":              "9",
	}
	for key, val := range cases {
		v := viper.New()
		v.Set(key, val)
		_, err := config.FromViper(v)
		assert.Error(t, err, key)
	}
}

func TestDBConfig_DSN(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "portal", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/portal?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", db.ConnectionString())
}
