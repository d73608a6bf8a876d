package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func decodeRawRecords(data []byte) ([]RawRecord, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var records []RawRecord
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return records, nil
}
