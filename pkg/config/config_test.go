package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MECHANIC_BUDGET_FLOOR", "")
	t.Setenv("SEARCH_PAGE_SIZE", "")
	t.Setenv("GIGACHAT_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10000.0, cfg.Mechanic.BudgetFloor)
	assert.Equal(t, 6, cfg.Search.PageSize)
	assert.False(t, cfg.GigaChat.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MECHANIC_BUDGET_FLOOR", "25000")
	t.Setenv("MECHANIC_REFERENCE_YEAR", "2023")
	t.Setenv("CATALOG_CACHE_TTL_SECONDS", "60")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25000.0, cfg.Mechanic.BudgetFloor)
	assert.Equal(t, 2023, cfg.Mechanic.ReferenceYear)
	assert.Equal(t, time.Minute, cfg.Catalog.CacheTTL)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("MECHANIC_BUDGET_FLOOR", "lots")
	t.Setenv("SEARCH_PAGE_SIZE", "six")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10000.0, cfg.Mechanic.BudgetFloor)
	assert.Equal(t, 6, cfg.Search.PageSize)
}
