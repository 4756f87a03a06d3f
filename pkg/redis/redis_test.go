package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/franchisehub/franchisehub-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	mr := miniredis.RunT(t)

	host, port, found := strings.Cut(mr.Addr(), ":")
	require.True(t, found)

	require.NoError(t, Init(&config.RedisConfig{
		Host: host,
		Port: port,
	}))
	t.Cleanup(func() {
		Close()
		client = nil
	})

	return mr
}

func TestBlacklistToken(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	token := "some.jwt.token"

	revoked, err := IsTokenBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, BlacklistToken(ctx, token, time.Hour))

	revoked, err = IsTokenBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)

	// Other tokens are unaffected
	revoked, err = IsTokenBlacklisted(ctx, "another.jwt.token")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestBlacklistToken_ExpiresWithToken(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	token := "short.lived.token"
	require.NoError(t, BlacklistToken(ctx, token, time.Minute))

	mr.FastForward(2 * time.Minute)

	revoked, err := IsTokenBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestCountInquiry(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, err := CountInquiry(ctx, "203.0.113.7", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	// Counters are per client IP
	count, err := CountInquiry(ctx, "198.51.100.2", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCountInquiry_WindowExpiry(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	_, err := CountInquiry(ctx, "203.0.113.7", time.Minute)
	require.NoError(t, err)

	// The counter key expires with the window
	mr.FastForward(2 * time.Minute)
	assert.Empty(t, mr.Keys())
}
