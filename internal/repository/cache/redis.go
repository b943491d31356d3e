package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/seoscore/seoscore/internal/models"
	"github.com/seoscore/seoscore/internal/service/seo"
)

const (
	// Cache key prefixes
	KeyPrefixResult   = "seo_result:"
	KeyPrefixAnalysis = "analysis:"

	// Default TTL for cached items
	DefaultTTL = 1 * time.Hour
)

// Repository represents a Redis cache repository. Scoring is
// deterministic, so results are memoized under a digest of the input.
type Repository struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

// NewRepository creates a new Redis cache repository. A nil client
// disables caching; every write becomes a no-op and every read a miss.
func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Repository{
		client: client,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

// ResultKey derives the cache key for an input. The keyword is
// normalized the same way the engine normalizes it, so inputs that
// score identically share a key.
func ResultKey(input seo.AnalysisInput) string {
	normalized := input
	normalized.FocusKeyword = strings.ToLower(strings.TrimSpace(input.FocusKeyword))

	data, err := json.Marshal(normalized)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return KeyPrefixResult + hex.EncodeToString(sum[:])
}

// CacheResult memoizes a scoring result under the input's digest
func (r *Repository) CacheResult(key string, result *seo.Result) error {
	if r.client == nil || key == "" {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	return r.client.Set(r.ctx, key, data, r.ttl).Err()
}

// GetResult retrieves a memoized result. A cache miss returns nil, nil.
func (r *Repository) GetResult(key string) (*seo.Result, error) {
	if r.client == nil || key == "" {
		return nil, nil
	}

	data, err := r.client.Get(r.ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss, not an error
		}
		return nil, err
	}

	var result seo.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// CacheAnalysis stores a persisted analysis record in the cache
func (r *Repository) CacheAnalysis(analysis *models.ContentAnalysis) error {
	if r.client == nil {
		return nil
	}

	data, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	key := KeyPrefixAnalysis + analysis.ID.String()
	return r.client.Set(r.ctx, key, data, r.ttl).Err()
}

// GetAnalysis retrieves a persisted analysis record from the cache. A
// cache miss returns nil, nil.
func (r *Repository) GetAnalysis(id uuid.UUID) (*models.ContentAnalysis, error) {
	if r.client == nil {
		return nil, nil
	}

	key := KeyPrefixAnalysis + id.String()
	data, err := r.client.Get(r.ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss, not an error
		}
		return nil, err
	}

	var analysis models.ContentAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}

	return &analysis, nil
}

// InvalidateAnalysisCache removes a persisted analysis from the cache
func (r *Repository) InvalidateAnalysisCache(id uuid.UUID) error {
	if r.client == nil {
		return nil
	}

	key := KeyPrefixAnalysis + id.String()
	return r.client.Del(r.ctx, key).Err()
}
