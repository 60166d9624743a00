package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"doctor-triage/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const (
	RedisTriageKeyPrefix = "triage:result:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 500 * time.Millisecond
)

// TriageCache stores classifications produced by the remote classifier.
type TriageCache interface {
	// Get returns nil without error on a miss.
	Get(ctx context.Context, symptoms string) (*entity.TriageResult, error)
	Set(ctx context.Context, symptoms string, result entity.TriageResult) error
}

type redisTriageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTriageCache(client *redis.Client, ttl time.Duration) TriageCache {
	return &redisTriageCache{client: client, ttl: ttl}
}

func (c *redisTriageCache) Get(ctx context.Context, symptoms string) (*entity.TriageResult, error) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, TriageCacheKey(symptoms)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("triage cache get: %w", err)
	}

	var cached entity.TriageResult
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("triage cache decode: %w", err)
	}
	normalized := cached.Normalize()
	return &normalized, nil
}

func (c *redisTriageCache) Set(ctx context.Context, symptoms string, result entity.TriageResult) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := json.Marshal(result.Normalize())
	if err != nil {
		return fmt.Errorf("triage cache encode: %w", err)
	}
	if err := c.client.Set(ctx, TriageCacheKey(symptoms), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("triage cache set: %w", err)
	}
	return nil
}

// TriageCacheKey folds case and whitespace so trivially different inputs share an entry.
func TriageCacheKey(symptoms string) string {
	canonical := strings.Join(strings.Fields(strings.ToLower(symptoms)), " ")
	sum := sha256.Sum256([]byte(canonical))
	return RedisTriageKeyPrefix + hex.EncodeToString(sum[:])
}
