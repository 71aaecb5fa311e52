package storage

import "time"

// BatchResult holds the rendered rows of one processed batch so the HTTP
// layer can serve them again as a downloadable file. Only rendered output
// is kept; individual verdicts are never persisted.
type BatchResult struct {
	ID        string
	Header    []string
	Rows      [][]string
	CreatedAt time.Time
}

// BatchStore is the interface for keeping processed batch results around
// for download. Implementations can use any backend; the in-memory store
// is sufficient for a single-process deployment.
type BatchStore interface {
	// SaveBatch stores a batch result under its ID, replacing any
	// previous batch with the same ID.
	SaveBatch(result *BatchResult) error

	// GetBatch retrieves a stored batch.
	// Returns nil, nil when no batch exists for the ID.
	GetBatch(id string) (*BatchResult, error)
}
