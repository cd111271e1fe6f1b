// Package highscore persists the best score to a small JSON file. Failures
// are never fatal: the game keeps an in-memory score and surfaces a warning.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrUnavailable wraps any persistence failure so callers can degrade to
// in-memory scores.
var ErrUnavailable = errors.New("highscore: persistence unavailable")

// Record is the stored high score entry.
type Record struct {
	Value     int       `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// Store reads and writes the high score file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the saved high score, or 0 when the file is missing or
// corrupt. Only genuine I/O failures are reported.
func (s *Store) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		// A corrupt file is treated as no score rather than an error.
		return 0, nil
	}
	if rec.Value < 0 {
		return 0, nil
	}
	return rec.Value, nil
}

// Save writes a new high score with the current timestamp.
func (s *Store) Save(value int) error {
	rec := Record{Value: value, Timestamp: time.Now()}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
