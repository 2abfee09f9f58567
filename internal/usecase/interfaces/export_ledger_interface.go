package interfaces

import (
	"context"

	"billreview/internal/domain/entities"
)

// IExportLedger is the append-only historical export ledger. It is the
// single source of truth for duplicate keys and EOBR numbers: sequence
// state is always recomputed from rows, never kept as a counter, so batch
// replay stays safe.

type IExportLedger interface {
	// All returns every historical row. The export engine loads the ledger
	// into memory once per batch so the per-bill critical section never
	// waits on the database.
	All(ctx context.Context) ([]entities.ExportRow, error)
	Append(ctx context.Context, row entities.ExportRow) error
}
