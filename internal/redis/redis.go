package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	redisClient "github.com/go-redis/redis/v8"

	"github.com/sukalov/lyricsfmt/internal/utils"
)

// Manager stores processed-lyrics cache entries and per-chat settings.
type Manager struct {
	client *redisClient.Client
}

// NewManager connects using REDIS_URL and REDIS_PASSWORD from the
// environment.
func NewManager() (*Manager, error) {
	env, err := utils.LoadEnv([]string{"REDIS_URL", "REDIS_PASSWORD"})
	if err != nil {
		return nil, fmt.Errorf("failed to load redis env: %w", err)
	}
	opt, err := redisClient.ParseURL(fmt.Sprintf("rediss://default:%s@%s", env["REDIS_PASSWORD"], env["REDIS_URL"]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &Manager{client: redisClient.NewClient(opt)}, nil
}

// NewManagerWithClient wraps an existing client, mainly for tests.
func NewManagerWithClient(client *redisClient.Client) *Manager {
	return &Manager{client: client}
}

// CacheKey identifies one processed document by its content and the line
// length it was processed at.
func CacheKey(text string, maxLineLength int) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("processed:%d:%s", maxLineLength, hex.EncodeToString(sum[:]))
}

// GetCached returns a previously processed document, or "" when none is
// stored under the key.
func (m *Manager) GetCached(ctx context.Context, key string) (string, error) {
	text, err := m.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisClient.Nil {
			return "", nil
		}
		return "", err
	}
	return text, nil
}

// SetCached stores a processed document under the key for the given TTL.
func (m *Manager) SetCached(ctx context.Context, key, text string, ttl time.Duration) error {
	return m.client.Set(ctx, key, text, ttl).Err()
}

// ChatLineLength returns the per-chat line length, or 0 when the chat never
// set one.
func (m *Manager) ChatLineLength(ctx context.Context, chatID int64) (int, error) {
	raw, err := m.client.Get(ctx, chatLengthKey(chatID)).Result()
	if err != nil {
		if err == redisClient.Nil {
			return 0, nil
		}
		return 0, err
	}
	length, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("corrupt line length for chat %d: %w", chatID, err)
	}
	return length, nil
}

// SetChatLineLength stores the line length a chat asked for.
func (m *Manager) SetChatLineLength(ctx context.Context, chatID int64, length int) error {
	return m.client.Set(ctx, chatLengthKey(chatID), strconv.Itoa(length), 0).Err()
}

func chatLengthKey(chatID int64) string {
	return fmt.Sprintf("chat:%d:line_length", chatID)
}
