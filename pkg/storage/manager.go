package storage

import "github.com/rodnney/biotech-x/pkg/logger"

// NewManager returns the Redis store when it is enabled and the in-memory
// store otherwise.
func NewManager(config StorageConfig) (Store, error) {
	if !config.Redis.Enabled {
		logger.Infof("Redis storage disabled, keeping analysis records in memory")
		return NewMemoryStore(), nil
	}

	client, err := NewRedisClient(config.Redis)
	if err != nil {
		return nil, err
	}
	return client, nil
}
