package usecase

import (
	"sort"

	"billreview/internal/domain/entities"
)

// CategoryMatch records one billed code matched to one ordered code through
// a shared taxonomy bucket, kept for audit display.

type CategoryMatch struct {
	BilledCPT   string
	OrderedCPT  string
	Category    string
	Subcategory string
}

// ComparisonResult is the classified diff between a bill's and an order's
// procedure-code sets. The four partitions are disjoint.

type ComparisonResult struct {
	ExactMatches     []string
	CategoryMatches  []CategoryMatch
	BilledNotOrdered []string
	OrderedNotBilled []string

	// Distinct code counts before any matching, used by the disposition
	// rules. Ancillary codes are excluded from the billed count because
	// they never count toward a line-item mismatch.
	DistinctBilled          int
	DistinctOrdered         int
	DistinctBilledAncillary int
}

// Overlap reports whether any billed code was satisfied by an exact or
// category match.
func (r ComparisonResult) Overlap() bool {
	return len(r.ExactMatches) > 0 || len(r.CategoryMatches) > 0
}

// AllBilledSatisfied reports whether every billed code found an exact or
// category match.
func (r ComparisonResult) AllBilledSatisfied() bool {
	return len(r.BilledNotOrdered) == 0
}

// MatchedCPTs returns the billed codes satisfied by either match kind,
// ascending.
func (r ComparisonResult) MatchedCPTs() []string {
	out := make([]string, 0, len(r.ExactMatches)+len(r.CategoryMatches))
	out = append(out, r.ExactMatches...)
	for _, m := range r.CategoryMatches {
		out = append(out, m.BilledCPT)
	}
	sort.Strings(out)
	return out
}

// CompareLineItems classifies a bill's procedure codes against an order's.
//
// The comparison is set-based over normalized codes: a code appearing twice
// with different modifiers is one code (modifiers are informational here).
// Category matching consumes each code at most once, walking billed codes
// ascending and taking the lowest eligible ordered code, so re-runs always
// produce the same diff.
func CompareLineItems(
	billItems []entities.BillLineItem,
	orderItems []entities.OrderLineItem,
	categories map[string]entities.ProcedureCategory,
	ancillary map[string]struct{},
) ComparisonResult {
	billed := map[string]struct{}{}
	for _, li := range billItems {
		if cpt := li.NormalizedCPT(); cpt != "" {
			billed[cpt] = struct{}{}
		}
	}
	ordered := map[string]struct{}{}
	for _, li := range orderItems {
		if cpt := li.NormalizedCPT(); cpt != "" {
			ordered[cpt] = struct{}{}
		}
	}

	res := ComparisonResult{DistinctOrdered: len(ordered)}
	for cpt := range billed {
		if _, anc := ancillary[cpt]; anc {
			res.DistinctBilledAncillary++
		} else {
			res.DistinctBilled++
		}
	}

	var billOnly, orderOnly []string
	for cpt := range billed {
		if _, ok := ordered[cpt]; ok {
			res.ExactMatches = append(res.ExactMatches, cpt)
		} else if _, anc := ancillary[cpt]; !anc {
			billOnly = append(billOnly, cpt)
		}
	}
	for cpt := range ordered {
		if _, ok := billed[cpt]; ok {
			continue
		}
		if _, anc := ancillary[cpt]; !anc {
			orderOnly = append(orderOnly, cpt)
		}
	}
	sort.Strings(res.ExactMatches)
	sort.Strings(billOnly)
	sort.Strings(orderOnly)

	// Category pass over the leftovers. consumed tracks order-side codes
	// already claimed by an earlier billed code.
	consumed := map[string]struct{}{}
	for _, bcpt := range billOnly {
		cat, ok := categories[bcpt]
		if !ok || !cat.Known() {
			res.BilledNotOrdered = append(res.BilledNotOrdered, bcpt)
			continue
		}
		matched := false
		for _, ocpt := range orderOnly {
			if _, used := consumed[ocpt]; used {
				continue
			}
			ocat, ok := categories[ocpt]
			if !ok || ocat.Key() != cat.Key() {
				continue
			}
			consumed[ocpt] = struct{}{}
			res.CategoryMatches = append(res.CategoryMatches, CategoryMatch{
				BilledCPT:   bcpt,
				OrderedCPT:  ocpt,
				Category:    cat.Category,
				Subcategory: cat.Subcategory,
			})
			matched = true
			break
		}
		if !matched {
			res.BilledNotOrdered = append(res.BilledNotOrdered, bcpt)
		}
	}
	for _, ocpt := range orderOnly {
		if _, used := consumed[ocpt]; !used {
			res.OrderedNotBilled = append(res.OrderedNotBilled, ocpt)
		}
	}
	return res
}

// UnitViolation is a non-ancillary line billed with more than one unit.
// Violations never change the disposition on their own; they are surfaced
// for manual review alongside it.

type UnitViolation struct {
	LineID  string
	CPTCode string
	Units   int
}

// CheckUnits returns every unit-count violation on the bill.
func CheckUnits(items []entities.BillLineItem, ancillary map[string]struct{}) []UnitViolation {
	var out []UnitViolation
	for _, li := range items {
		cpt := li.NormalizedCPT()
		if cpt == "" {
			continue
		}
		if _, anc := ancillary[cpt]; anc {
			continue
		}
		if li.Units > 1 {
			out = append(out, UnitViolation{LineID: li.ID, CPTCode: cpt, Units: li.Units})
		}
	}
	return out
}
