package chart

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// IngestSource stores ad-hoc signal records submitted via the API.
type IngestSource struct {
	name    string
	mu      sync.RWMutex
	records []RawRecord
}

// NewIngestSource constructs an empty ingest source.
func NewIngestSource(name string) *IngestSource {
	if name == "" {
		name = "ingest"
	}
	return &IngestSource{name: name}
}

// Name returns the source identifier.
func (s *IngestSource) Name() string { return s.name }

// Add registers a record, generating an id when missing. A record with a
// known id replaces the existing one.
func (s *IngestSource) Add(rec RawRecord) RawRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	for idx := range s.records {
		if s.records[idx].ID == rec.ID {
			s.records[idx] = rec
			return s.records[idx]
		}
	}

	s.records = append(s.records, rec)
	return rec
}

// Fetch returns a copy of the stored records.
func (s *IngestSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]RawRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Clear drops every stored record and returns the number removed.
func (s *IngestSource) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.records)
	s.records = nil
	return removed
}
