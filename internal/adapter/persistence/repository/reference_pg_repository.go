package repository

import (
	"context"
	"errors"
	"fmt"

	"billreview/internal/domain/entities"
	"billreview/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReferencePgRepository serves the read-only reference tables in Postgres:
// the procedure taxonomy (dim_proc), the contracted in-network rate table
// (ppo_rates) and the per-order negotiated rate table (ota_rates).
//
// Rate lookups return a nil rate when no row matches; absence is a business
// outcome the resolver turns into a reason code, not an error.

type ReferencePgRepository struct {
	pool *pgxpool.Pool
}

var (
	_ interfaces.IProcedureTaxonomy = (*ReferencePgRepository)(nil)
	_ interfaces.IRateSource        = (*ReferencePgRepository)(nil)
	_ interfaces.IAncillaryCodes    = (*ReferencePgRepository)(nil)
)

func NewReferencePgRepository(pool *pgxpool.Pool) *ReferencePgRepository {
	return &ReferencePgRepository{pool: pool}
}

func (r *ReferencePgRepository) Categories(ctx context.Context, cptCodes []string) (map[string]entities.ProcedureCategory, error) {
	out := make(map[string]entities.ProcedureCategory, len(cptCodes))
	if len(cptCodes) == 0 {
		return out, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT proc_cd, proc_category, proc_subcategory, COALESCE(proc_desc, '')
		 FROM dim_proc
		 WHERE proc_cd = ANY($1)`,
		cptCodes,
	)
	if err != nil {
		return nil, fmt.Errorf("query dim_proc: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		var cat entities.ProcedureCategory
		if err := rows.Scan(&code, &cat.Category, &cat.Subcategory, &cat.Description); err != nil {
			return nil, fmt.Errorf("scan dim_proc: %w", err)
		}
		out[entities.NormalizeCPT(code)] = cat
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read dim_proc: %w", err)
	}
	return out, nil
}

func (r *ReferencePgRepository) InNetworkRate(ctx context.Context, tin, cptCode, modifier string) (*float64, error) {
	var rate float64
	err := r.pool.QueryRow(ctx,
		`SELECT rate FROM ppo_rates
		 WHERE tin = $1 AND proc_cd = $2 AND COALESCE(modifier, '') = $3
		 ORDER BY rate DESC
		 LIMIT 1`,
		tin, cptCode, modifier,
	).Scan(&rate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query ppo_rates: %w", err)
	}
	return &rate, nil
}

func (r *ReferencePgRepository) OutOfNetworkRate(ctx context.Context, orderID, cptCode, modifier string) (*float64, error) {
	var rate float64
	err := r.pool.QueryRow(ctx,
		`SELECT rate FROM ota_rates
		 WHERE order_id = $1 AND proc_cd = $2 AND COALESCE(modifier, '') = $3
		 ORDER BY rate DESC
		 LIMIT 1`,
		orderID, cptCode, modifier,
	).Scan(&rate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query ota_rates: %w", err)
	}
	return &rate, nil
}

func (r *ReferencePgRepository) AncillarySet(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT proc_cd FROM dim_proc WHERE LOWER(proc_category) = 'ancillary'`,
	)
	if err != nil {
		return nil, fmt.Errorf("query ancillary codes: %w", err)
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan ancillary code: %w", err)
		}
		set[entities.NormalizeCPT(code)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read ancillary codes: %w", err)
	}
	return set, nil
}
