package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("analysis not found")

// AnalysisRecord is one accepted analysis request. Records are only kept;
// nothing processes them yet.
type AnalysisRecord struct {
	// ID is the analysis identifier (e.g., "analysis_6f1c...")
	ID string `json:"analysis_id"`

	// SampleName is the sample the files belong to
	SampleName string `json:"sample_name"`

	// FileURLs point at the raw mass-spectrometry files
	FileURLs []string `json:"file_urls"`

	// AnalysisType is the requested analysis (e.g., "mass_spectrometry")
	AnalysisType string `json:"analysis_type"`

	// Status is the intake status ("queued")
	Status string `json:"status"`

	// Progress is the completion percentage
	Progress int `json:"progress"`

	// CreatedAt is when the request was accepted
	CreatedAt time.Time `json:"created_at"`
}

// Store persists analysis records.
type Store interface {
	SaveAnalysis(ctx context.Context, record *AnalysisRecord) error
	GetAnalysis(ctx context.Context, id string) (*AnalysisRecord, error)
	Close() error
}

// StorageConfig holds configuration for the storage backend.
type StorageConfig struct {
	// Redis configuration
	Redis RedisConfig `json:"redis"`
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	// Enabled selects Redis; the in-memory store is used otherwise
	Enabled bool `json:"enabled"`

	// Address is the Redis server address (host:port)
	Address string `json:"address"`

	// Password is the Redis password (optional)
	Password string `json:"password"`

	// Database is the Redis database number (0-15)
	Database int `json:"database"`

	// KeyPrefix is the prefix for all Redis keys
	KeyPrefix string `json:"key_prefix"`
}
