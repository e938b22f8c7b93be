package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps records in process memory. Records are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]AnalysisRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]AnalysisRecord)}
}

// SaveAnalysis stores a copy of record, replacing any record with the same id.
func (m *MemoryStore) SaveAnalysis(_ context.Context, record *AnalysisRecord) error {
	stored := *record
	stored.FileURLs = append([]string(nil), record.FileURLs...)

	m.mu.Lock()
	m.records[record.ID] = stored
	m.mu.Unlock()
	return nil
}

// GetAnalysis returns a copy of the record with id, or ErrNotFound.
func (m *MemoryStore) GetAnalysis(_ context.Context, id string) (*AnalysisRecord, error) {
	m.mu.RLock()
	record, ok := m.records[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	record.FileURLs = append([]string(nil), record.FileURLs...)
	return &record, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
