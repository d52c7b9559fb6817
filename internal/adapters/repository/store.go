// Package repository persists the prediction history and the derived
// accuracy report. The on-disk shape is a JSON array of records plus a
// JSON stats object, both rewritten wholesale through atomic
// temp-file-and-rename swaps.
package repository

import (
	"context"

	"github.com/hoopsight/hoopsight/internal/domain/model"
)

// Store provides durable access to prediction records and accuracy stats.
//
// Implementations serialize their own file access, but the overall
// read-modify-write cycle during reconciliation is the caller's to
// guard: the design assumes at most one writer at a time.
type Store interface {
	// All returns every prediction ever logged, oldest first.
	All(ctx context.Context) ([]model.PredictionRecord, error)

	// Log stores a new prediction. Logging is idempotent per record id:
	// an existing unchecked record with the same id is replaced in
	// place, a checked one is returned unchanged, anything else is
	// appended. The stored record is returned.
	Log(ctx context.Context, rec model.PredictionRecord) (model.PredictionRecord, error)

	// Replace rewrites the full history. Used after reconciliation
	// mutates matched records.
	Replace(ctx context.Context, recs []model.PredictionRecord) error

	// Stats returns the last persisted accuracy report.
	Stats(ctx context.Context) (model.AccuracyStats, error)

	// SaveStats overwrites the persisted accuracy report.
	SaveStats(ctx context.Context, s model.AccuracyStats) error
}
