package chart

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Source defines a pluggable upstream provider of raw signal records.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]RawRecord, error)
}

// SourceRegistry keeps track of available sources and enables simple
// configuration.
type SourceRegistry struct {
	sources []Source
}

// NewSourceRegistry builds a registry with the provided sources.
func NewSourceRegistry(sources ...Source) (*SourceRegistry, error) {
	if len(sources) == 0 {
		return nil, errors.New("chart: at least one source is required")
	}
	return &SourceRegistry{sources: sources}, nil
}

// Add registers a new source instance.
func (r *SourceRegistry) Add(source Source) {
	r.sources = append(r.sources, source)
}

// FetchAll aggregates records from each registered source. Any source
// failure fails the whole fetch; the caller decides how to degrade.
func (r *SourceRegistry) FetchAll(ctx context.Context) ([]RawRecord, error) {
	var results []RawRecord
	for _, src := range r.sources {
		records, err := src.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch from %s: %w", src.Name(), err)
		}
		results = append(results, records...)
	}
	return results, nil
}

// StaticFileSource serves raw records from a JSON file.
type StaticFileSource struct {
	name string
	path string
}

// NewStaticFileSource returns a new StaticFileSource referencing the given
// file.
func NewStaticFileSource(name, path string) (*StaticFileSource, error) {
	if name == "" {
		return nil, errors.New("static source requires a name")
	}
	if path == "" {
		return nil, errors.New("static source requires a path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("static source: %w", err)
	}
	return &StaticFileSource{name: name, path: path}, nil
}

// Name returns the source name.
func (s *StaticFileSource) Name() string { return s.name }

// Fetch reads and decodes the JSON file.
func (s *StaticFileSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read static file %s: %w", s.path, err)
	}

	records, err := decodeRawRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("decode static file %s: %w", s.path, err)
	}
	return records, nil
}
