package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Default().MaxAmount, cfg.MaxAmount)
	assert.Equal(t, 3, cfg.MinSplitQuantity)
	assert.Equal(t, 3, cfg.DefaultSplitQuantity)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MIN_SPLIT_QUANTITY", "4")
	t.Setenv("DEFAULT_SPLIT_QUANTITY", "2")
	t.Setenv("MAX_RATE", "250.5")
	t.Setenv("MAX_INSTALLMENTS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.MinSplitQuantity)
	// значение по умолчанию поднимается до минимума
	assert.Equal(t, 4, cfg.DefaultSplitQuantity)
	assert.Equal(t, 250.5, cfg.MaxRate)
	assert.Equal(t, 600, cfg.MaxInstallments)
}
