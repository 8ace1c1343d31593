package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisClient "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()
	server := miniredis.RunT(t)
	client := redisClient.NewClient(&redisClient.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewManagerWithClient(client)
}

func TestCacheRoundTrip(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	key := CacheKey("some lyrics", 36)

	got, err := m.GetCached(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, got, "miss must come back empty, not as an error")

	require.NoError(t, m.SetCached(ctx, key, "processed lyrics", time.Hour))

	got, err = m.GetCached(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "processed lyrics", got)
}

func TestCacheKeyDependsOnLength(t *testing.T) {
	assert.NotEqual(t, CacheKey("text", 36), CacheKey("text", 40))
	assert.NotEqual(t, CacheKey("text", 36), CacheKey("other", 36))
	assert.Equal(t, CacheKey("text", 36), CacheKey("text", 36))
}

func TestChatLineLength(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	length, err := m.ChatLineLength(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, length, "unset chat must report 0")

	require.NoError(t, m.SetChatLineLength(ctx, 42, 28))

	length, err = m.ChatLineLength(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 28, length)

	// other chats stay unaffected
	length, err = m.ChatLineLength(ctx, 43)
	require.NoError(t, err)
	assert.Zero(t, length)
}
