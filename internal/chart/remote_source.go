package chart

import (
	"context"
	"fmt"

	"eduradarbackend/internal/tabular"
)

// RemoteSource adapts a tabular API table into a Source. Field names follow
// the upstream grid's column headings.
type RemoteSource struct {
	name   string
	client tabular.RecordLister
	table  string
}

// NewRemoteSource constructs a RemoteSource reading the given table.
func NewRemoteSource(name string, client tabular.RecordLister, table string) (*RemoteSource, error) {
	if client == nil {
		return nil, fmt.Errorf("remote source requires a client")
	}
	if table == "" {
		return nil, fmt.Errorf("remote source requires a table")
	}
	if name == "" {
		name = "remote"
	}
	return &RemoteSource{name: name, client: client, table: table}, nil
}

// Name returns the source name.
func (s *RemoteSource) Name() string { return s.name }

// Fetch lists the table and maps its rows onto raw records.
func (s *RemoteSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	rows, err := s.client.ListRecords(ctx, s.table)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table, err)
	}

	records := make([]RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, RawRecord{
			ID:                 row.ID,
			Title:              fieldString(row.Fields, "Title"),
			Description:        fieldString(row.Fields, "Description"),
			SourceURL:          fieldString(row.Fields, "Source URL"),
			Horizon:            fieldString(row.Fields, "Horizon"),
			Domain:             fieldString(row.Fields, "Domain"),
			Category:           fieldString(row.Fields, "Category"),
			ParticipantFlagged: fieldBool(row.Fields, "Participant Flagged"),
		})
	}
	return records, nil
}

func fieldString(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func fieldBool(fields map[string]any, key string) bool {
	if v, ok := fields[key].(bool); ok {
		return v
	}
	return false
}
