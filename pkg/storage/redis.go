package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/rodnney/biotech-x/pkg/logger"
)

// recordTTL is how long analysis records are kept.
const recordTTL = 30 * 24 * time.Hour

// RedisClient stores analysis records in Redis.
type RedisClient struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(config RedisConfig) (*RedisClient, error) {
	if !config.Enabled {
		return nil, fmt.Errorf("Redis storage is disabled")
	}

	if config.Address == "" {
		return nil, fmt.Errorf("Redis address is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           config.Database,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Infof("Redis storage client connected to %s", config.Address)

	return &RedisClient{
		client:    rdb,
		keyPrefix: config.KeyPrefix,
	}, nil
}

// Close closes the Redis connection.
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// buildKey joins the prefix and parts with ':'
func (r *RedisClient) buildKey(parts ...string) string {
	var builder strings.Builder
	builder.WriteString(r.keyPrefix)
	for _, part := range parts {
		builder.WriteByte(':')
		builder.WriteString(part)
	}
	return builder.String()
}

// SaveAnalysis stores record under <prefix>:analysis:<id> for 30 days.
func (r *RedisClient) SaveAnalysis(ctx context.Context, record *AnalysisRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis record: %w", err)
	}

	if err := r.client.Set(ctx, r.buildKey("analysis", record.ID), data, recordTTL).Err(); err != nil {
		return fmt.Errorf("failed to store analysis record: %w", err)
	}

	logger.Debugf("Stored analysis record %s (sample: %s)", record.ID, record.SampleName)
	return nil
}

// GetAnalysis loads the record with id, or returns ErrNotFound.
func (r *RedisClient) GetAnalysis(ctx context.Context, id string) (*AnalysisRecord, error) {
	data, err := r.client.Get(ctx, r.buildKey("analysis", id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis record: %w", err)
	}

	var record AnalysisRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis record: %w", err)
	}
	return &record, nil
}
