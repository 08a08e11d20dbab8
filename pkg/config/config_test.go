package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SEARCH_WORKERS", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("GIGACHAT_MAX_SUMMARIES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Search.Workers)
	assert.Equal(t, 5, cfg.GigaChat.MaxSummaries)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SEARCH_WORKERS", "8")
	t.Setenv("SUPPLIER_RPS", "2.5")
	t.Setenv("REDIS_QUOTE_TTL_MINUTES", "5")
	t.Setenv("HISTORY_WINDOW_DAYS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Search.Workers)
	assert.Equal(t, 2.5, cfg.Search.SupplierRPS)
	assert.Equal(t, 5*time.Minute, cfg.Redis.QuoteTTL)
	assert.Equal(t, 7, cfg.Search.HistoryWindowDays)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SEARCH_WORKERS", "many")
	t.Setenv("SUPPLIER_RPS", "fast")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Search.Workers)
	assert.Equal(t, float64(10), cfg.Search.SupplierRPS)
}
