package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestNewConfig_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("DATABASE_DRIVER", "Memory")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ConsultationTTL)
	assert.Equal(t, 5000, cfg.Import.MaxRows)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:4001"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.SummarySync.Enabled)
	assert.Equal(t, "parceria-v1", cfg.Terms.Version)
	assert.Equal(t, 5*time.Minute, cfg.Terms.CodeTTL)
	assert.Empty(t, cfg.Mail.SendGridAPIKey)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	resetViper(t)
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_USER", "vendas")
	t.Setenv("DATABASE_PASSWORD", "segredo")
	t.Setenv("DATABASE_URL", "db:5432/influencers")
	t.Setenv("CONSULTATION_CACHE_TTL", "30s")
	t.Setenv("IMPORT_MAX_ROWS", "-3")
	t.Setenv("TERMS_VERSION", "parceria-v2")
	t.Setenv("VERIFICATION_CODE_TTL", "10m")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://vendas:segredo@db:5432/influencers", cfg.Database.DSN)
	assert.Equal(t, 30*time.Second, cfg.Redis.ConsultationTTL)
	assert.Equal(t, 0, cfg.Import.MaxRows)
	assert.Equal(t, "parceria-v2", cfg.Terms.Version)
	assert.Equal(t, 10*time.Minute, cfg.Terms.CodeTTL)
}

func TestNewConfig_InvalidDriver(t *testing.T) {
	resetViper(t)
	t.Setenv("DATABASE_DRIVER", "sqlite")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}
