// Package store persists opaque key-value records for the game.
// The engine only sees the Gateway interface; SQLite and in-memory
// implementations live here.
package store

import (
	"errors"
)

// Record is an opaque key-value document
type Record map[string]any

// Well-known record keys
const (
	KeyHighScore    = "high_score"
	KeyAchievements = "achievements"
	KeySettings     = "settings"
	KeyLastRun      = "last_run"
)

// Sentinel errors
var (
	ErrClosed   = errors.New("store closed")
	ErrEmptyKey = errors.New("empty record key")
)

// Gateway loads and saves records
// Load returns ok=false with a nil error when the key has never been saved
type Gateway interface {
	Load(key string) (rec Record, ok bool, err error)
	Save(key string, rec Record) error
}

// Clone returns a shallow copy safe to hand across the gateway boundary
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Int reads an integer field, tolerating the numeric types decoders produce
func (r Record) Int(key string, def int) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Float reads a floating-point field
func (r Record) Float(key string, def float64) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

// Bool reads a boolean field
func (r Record) Bool(key string, def bool) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return def
}

// String reads a string field
func (r Record) String(key string, def string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return def
}
