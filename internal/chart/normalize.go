package chart

import (
	"errors"
	"log"
	"strconv"
	"strings"
)

// NormalizeRecords maps raw tabular rows into canonical signals. Records
// that cannot be normalized are dropped with a logged warning; a bad row
// never aborts the batch.
func NormalizeRecords(records []RawRecord) []Signal {
	signals := make([]Signal, 0, len(records))
	for idx, rec := range records {
		sig, err := normalizeRecord(idx, rec)
		if err != nil {
			log.Printf("chart: drop record %d (%s): %v", idx, rec.ID, err)
			continue
		}
		signals = append(signals, sig)
	}
	return signals
}

func normalizeRecord(idx int, rec RawRecord) (Signal, error) {
	title := CollapseWhitespace(rec.Title)
	if title == "" {
		return Signal{}, errors.New("missing title")
	}

	id := strings.TrimSpace(rec.ID)
	if id == "" {
		// Index fallback: not stable across reloads, but enough to key a
		// label within one generation.
		id = strconv.Itoa(idx)
	}

	return Signal{
		ID:                 id,
		Title:              title,
		Description:        strings.TrimSpace(rec.Description),
		SourceURL:          strings.TrimSpace(rec.SourceURL),
		Horizon:            strings.TrimSpace(rec.Horizon),
		Domains:            ParseDomainTags(rec.Domain),
		Category:           ParseCategory(rec.Category),
		ParticipantFlagged: rec.ParticipantFlagged,
	}, nil
}

// ParseDomainTags splits a pipe-delimited domain string into canonical
// domain ids, preserving the left-to-right order of the surviving tokens.
// Unmappable tags are dropped with a warning; a missing or empty field
// yields no domains, which is legal.
func ParseDomainTags(raw string) []DomainID {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var domains []DomainID
	seen := make(map[DomainID]struct{})
	for _, token := range strings.Split(raw, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, ok := LookupDomainTag(token)
		if !ok {
			log.Printf("chart: unknown domain tag %q dropped", token)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		domains = append(domains, id)
	}
	return domains
}
