package repository

import (
	"context"
	"fmt"

	"billreview/internal/domain/entities"
	"billreview/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ExportLedgerPgRepository is the append-only export ledger in Postgres.
//
// Table: export_ledger
//   - bill_id, order_id, release_payment, duplicate_check, duplicate_key,
//     eobr_number, vendor, mailing_address, terms, bill_date, due_date,
//     description, memo, amount, created_at
//
// Rows are never updated or deleted; duplicate and numbering state is
// recomputed from the full row set on every export run.

type ExportLedgerPgRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IExportLedger = (*ExportLedgerPgRepository)(nil)

func NewExportLedgerPgRepository(pool *pgxpool.Pool) *ExportLedgerPgRepository {
	return &ExportLedgerPgRepository{pool: pool}
}

func (r *ExportLedgerPgRepository) All(ctx context.Context) ([]entities.ExportRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT bill_id, order_id, release_payment, duplicate_check, duplicate_key,
		        eobr_number, vendor, mailing_address, terms, bill_date, due_date,
		        description, memo, amount, created_at
		 FROM export_ledger
		 ORDER BY created_at, eobr_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("query export_ledger: %w", err)
	}
	defer rows.Close()

	var out []entities.ExportRow
	for rows.Next() {
		var row entities.ExportRow
		if err := rows.Scan(
			&row.BillID, &row.OrderID, &row.ReleasePayment, &row.DuplicateCheck, &row.DuplicateKey,
			&row.EOBRNumber, &row.Vendor, &row.MailingAddress, &row.Terms, &row.BillDate, &row.DueDate,
			&row.Description, &row.Memo, &row.Amount, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan export_ledger: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read export_ledger: %w", err)
	}
	return out, nil
}

func (r *ExportLedgerPgRepository) Append(ctx context.Context, row entities.ExportRow) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO export_ledger (
			bill_id, order_id, release_payment, duplicate_check, duplicate_key,
			eobr_number, vendor, mailing_address, terms, bill_date, due_date,
			description, memo, amount, created_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		row.BillID, row.OrderID, row.ReleasePayment, row.DuplicateCheck, row.DuplicateKey,
		row.EOBRNumber, row.Vendor, row.MailingAddress, row.Terms, row.BillDate, row.DueDate,
		row.Description, row.Memo, row.Amount, row.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert export_ledger: %w", err)
	}
	return nil
}
