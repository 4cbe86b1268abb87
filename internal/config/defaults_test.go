package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	SetDefaults(cfg)

	assert.Equal(t, int64(10485760), cfg.Parser.MaxInputBytes)
	assert.Equal(t, 10000, cfg.Cache.MaxSize)
	assert.Equal(t, 16, cfg.Cache.ShardSize)
	assert.Equal(t, "5m", cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestSetDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	SetDefaults(cfg)

	assert.Equal(t, "debug", cfg.Log.Level)
}
