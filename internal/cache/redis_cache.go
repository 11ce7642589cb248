package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-comparison-service/internal/metrics"
	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// RedisCache caches computed matrix snapshots and evaluation batches in
// Redis. Raw upstream odds are never stored, only engine output.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string        // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 5 * time.Minute
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

// matrixKey builds the Redis key for a matrix snapshot: matrix:{sport}:{region}:{market}
func matrixKey(sport, region string, market models.MarketKey) string {
	return fmt.Sprintf("matrix:%s:%s:%s", sport, region, market)
}

// evalsKey builds the Redis key for an evaluation batch: evals:{sport}:{region}:{market}
func evalsKey(sport, region string, market models.MarketKey) string {
	return fmt.Sprintf("evals:%s:%s:%s", sport, region, market)
}

// SetSnapshot caches a matrix snapshot together with the evaluation batch
// from the same scan, using a pipeline so both keys share one round trip.
func (c *RedisCache) SetSnapshot(ctx context.Context, snapshot *models.MatrixSnapshot, results []models.EvaluationResult) error {
	matrixData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal matrix snapshot: %w", err)
	}

	evalsData, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation results: %w", err)
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, matrixKey(snapshot.Sport, snapshot.Region, snapshot.Market), matrixData, c.ttl)
	pipe.Set(ctx, evalsKey(snapshot.Sport, snapshot.Region, snapshot.Market), evalsData, c.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		metrics.RecordCacheOperation("set_snapshot", err)
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}
	metrics.RecordCacheOperation("set_snapshot", nil)

	c.logger.Debug().
		Str("sport", snapshot.Sport).
		Str("region", snapshot.Region).
		Str("market", string(snapshot.Market)).
		Int("matrix_count", len(snapshot.Events)).
		Int("result_count", len(results)).
		Dur("ttl", c.ttl).
		Msg("cached snapshot")

	return nil
}

// GetMatrixSnapshot retrieves the cached matrix snapshot for a selection
func (c *RedisCache) GetMatrixSnapshot(ctx context.Context, sport, region string, market models.MarketKey) (*models.MatrixSnapshot, error) {
	data, err := c.client.Get(ctx, matrixKey(sport, region, market)).Bytes()
	if err == redis.Nil {
		metrics.RecordCacheOperation("get_matrix", err)
		return nil, fmt.Errorf("matrix snapshot not found in cache")
	} else if err != nil {
		metrics.RecordCacheOperation("get_matrix", err)
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}
	metrics.RecordCacheOperation("get_matrix", nil)

	var snapshot models.MatrixSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matrix snapshot: %w", err)
	}

	return &snapshot, nil
}

// GetEvaluations retrieves the cached evaluation batch for a selection
func (c *RedisCache) GetEvaluations(ctx context.Context, sport, region string, market models.MarketKey) ([]models.EvaluationResult, error) {
	data, err := c.client.Get(ctx, evalsKey(sport, region, market)).Bytes()
	if err == redis.Nil {
		metrics.RecordCacheOperation("get_evals", err)
		return nil, fmt.Errorf("evaluation results not found in cache")
	} else if err != nil {
		metrics.RecordCacheOperation("get_evals", err)
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}
	metrics.RecordCacheOperation("get_evals", nil)

	var results []models.EvaluationResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation results: %w", err)
	}

	return results, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
