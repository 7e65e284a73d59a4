package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"italiana", "mexicana", "asiatica"}, cfg.RecDefaultCuisines)
	assert.Equal(t, 15.0, cfg.RecDefaultMaxPrice)
	assert.Equal(t, 10.0, cfg.RecDefaultMaxDistanceKm)
	assert.Equal(t, "18:00-22:00", cfg.RecDefaultTimeSlot)
	assert.Equal(t, 10, cfg.RecTopN)
	assert.Equal(t, 5, cfg.RecSimilarTopN)

	// Singleton: a second call returns the same instance.
	again, err := GetConfig()
	require.NoError(t, err)
	assert.Same(t, cfg, again)
}
