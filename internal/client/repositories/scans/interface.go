package scans

import (
	"context"

	"github.com/harshpatel958/kontax/internal/payload"
)

// Entry is one row of the scan log: a decoded payload plus its store id.
type Entry struct {
	ID     int64
	Record payload.Record
}

// Repository is the scan log: one un-annotated row per successful decode,
// written before the user ever sees the annotation form.
type Repository interface {
	// Append inserts a new row and returns the store-assigned id.
	Append(ctx context.Context, rec payload.Record) (int64, error)

	// GetAll returns all rows in insertion order (ascending id).
	GetAll(ctx context.Context) ([]Entry, error)

	// DeleteByID removes one row. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id int64) error
}
