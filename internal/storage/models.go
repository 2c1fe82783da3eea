package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrVersionConflict is returned when a document save loses a
// compare-and-swap race against a concurrent writer.
var ErrVersionConflict = errors.New("document version conflict")

// ReportRecord is one generated report in the history table.
type ReportRecord struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
