package store

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// encodeRecord serializes a record body for storage
func encodeRecord(rec Record) (string, error) {
	if rec == nil {
		rec = Record{}
	}
	data, err := yaml.Marshal(map[string]any(rec))
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return string(data), nil
}

// decodeRecord parses a stored record body
func decodeRecord(body string) (Record, error) {
	rec := Record{}
	if err := yaml.Unmarshal([]byte(body), &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
