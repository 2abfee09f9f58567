package interfaces

import (
	"context"

	"billreview/internal/domain/entities"
)

// IProcedureTaxonomy looks up the dim_proc classification for procedure
// codes. Absence from the taxonomy is a normal outcome, not an error.

type IProcedureTaxonomy interface {
	// Categories returns classifications for the codes it knows; codes
	// missing from the result are unknown to the taxonomy.
	Categories(ctx context.Context, cptCodes []string) (map[string]entities.ProcedureCategory, error)
}

// IRateSource resolves allowed payment rates. Two independent sources
// exist: in-network keyed by (TIN, code, modifier) and out-of-network keyed
// by (order, code, modifier). A nil rate means no rate on file; the source
// never invents one.

type IRateSource interface {
	InNetworkRate(ctx context.Context, tin, cptCode, modifier string) (*float64, error)
	OutOfNetworkRate(ctx context.Context, orderID, cptCode, modifier string) (*float64, error)
}

// IAncillaryCodes supplies the injectable set of procedure codes exempt
// from unit-count and line-count mismatch rules.

type IAncillaryCodes interface {
	AncillarySet(ctx context.Context) (map[string]struct{}, error)
}
