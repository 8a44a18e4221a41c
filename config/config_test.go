package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigRateLimitFailClosed(t *testing.T) {
	t.Setenv("RATE_LIMIT_FAIL_CLOSED", "true")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.True(t, cfg.RateLimitFailClosed)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG_SET", "1")
	t.Setenv("FLAG_GARBAGE", "yep")

	assert.True(t, getEnvBool("FLAG_SET", false))
	assert.False(t, getEnvBool("FLAG_GARBAGE", false))
	assert.True(t, getEnvBool("FLAG_MISSING", true))
}
