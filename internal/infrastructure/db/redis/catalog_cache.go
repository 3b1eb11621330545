package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitstack/gym-api/internal/api/metrics"
	"github.com/fitstack/gym-api/internal/core/domain"
)

const defaultCacheTTL = 10 * time.Minute

// CatalogCache caches exercise catalog reads in Redis.
// Key format: catalog:exercise:<exercise_id> and catalog:muscle-groups.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) GetExerciseDetail(ctx context.Context, id string) (*domain.ExerciseDetail, error) {
	var detail domain.ExerciseDetail
	if err := c.get(ctx, c.exerciseKey(id), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *CatalogCache) SetExerciseDetail(ctx context.Context, detail *domain.ExerciseDetail) error {
	return c.set(ctx, c.exerciseKey(detail.ID), detail)
}

func (c *CatalogCache) GetMuscleGroupRegions(ctx context.Context) ([]domain.MuscleGroupRegion, error) {
	var regions []domain.MuscleGroupRegion
	if err := c.get(ctx, "catalog:muscle-groups", &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

func (c *CatalogCache) SetMuscleGroupRegions(ctx context.Context, regions []domain.MuscleGroupRegion) error {
	return c.set(ctx, "catalog:muscle-groups", regions)
}

func (c *CatalogCache) get(ctx context.Context, key string, out any) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
			return err
		}
		metrics.CatalogCacheTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		metrics.CatalogCacheTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("cache decode: %w", err)
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return nil
}

func (c *CatalogCache) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func (c *CatalogCache) exerciseKey(id string) string {
	return "catalog:exercise:" + id
}
