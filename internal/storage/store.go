// Package storage provides the record persistence layer for the application.
package storage

import (
	"context"

	"github.com/ovumlab/ovumsort/internal/model"
)

// Store holds completed analysis records across batches. Appending is the
// only way records get in and nothing updates or deletes an individual
// record; Clear wipes the whole store and exists for explicit user resets,
// not for the batch flow. All returns records in insertion order, which is
// the natural chronological report order.
type Store interface {
	Append(ctx context.Context, record *model.AnalysisRecord) error
	All(ctx context.Context) ([]model.AnalysisRecord, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
	Close() error
}
