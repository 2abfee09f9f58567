package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"billreview/internal/domain/entities"
	"billreview/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrBillNotMapped     = errors.New("bill is not in MAPPED status")
	ErrBillMissingOrder  = errors.New("bill has no assigned order")
	ErrOrderRepoMissing  = errors.New("order repository not configured")
	ErrTaxonomyMissing   = errors.New("procedure taxonomy not configured")
	ErrRateSourceMissing = errors.New("rate source not configured")
)

// IReconcileUseCase runs the bill-to-order reconciliation: comparator, rate
// resolution and the disposition state machine.
//
// Failure semantics are all-or-nothing per attempt: when the order cannot
// be loaded or the data is malformed, the bill stays MAPPED with last_error
// populated and no partial transition happens.

type IReconcileUseCase interface {
	ReconcileBill(ctx context.Context, billID string) (ReconcileResult, error)
	RunBatch(ctx context.Context, limit, workers int) (BatchSummary, error)
}

type ReconcileUseCase struct {
	bills     interfaces.IBillRepository
	orders    interfaces.IOrderRepository
	taxonomy  interfaces.IProcedureTaxonomy
	resolver  *RateResolver
	ancillary interfaces.IAncillaryCodes
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	bills interfaces.IBillRepository,
	orders interfaces.IOrderRepository,
	taxonomy interfaces.IProcedureTaxonomy,
	resolver *RateResolver,
	ancillary interfaces.IAncillaryCodes,
) *ReconcileUseCase {
	return &ReconcileUseCase{bills: bills, orders: orders, taxonomy: taxonomy, resolver: resolver, ancillary: ancillary}
}

// ReconcileResult is the per-bill outcome of one reconciliation attempt.

type ReconcileResult struct {
	BillID         string                   `json:"bill_id"`
	Status         entities.BillStatus      `json:"status"`
	Action         entities.BillAction      `json:"action"`
	Message        string                   `json:"message,omitempty"`
	Comparison     *ComparisonResult        `json:"comparison,omitempty"`
	UnitViolations []UnitViolation          `json:"unit_violations,omitempty"`
	LineRates      []LineRate               `json:"line_rates,omitempty"`
	Input          entities.DispositionInput `json:"classification,omitempty"`
}

// ReconcileBill runs one bill through the full pipeline. An error return
// means the engine itself failed (repo unavailable etc.); business outcomes
// including malformed data are reported through the result and the bill's
// status/last_error.
func (u *ReconcileUseCase) ReconcileBill(ctx context.Context, billID string) (ReconcileResult, error) {
	if u.bills == nil {
		return ReconcileResult{}, ErrRepoNotAttached
	}
	if u.orders == nil {
		return ReconcileResult{}, ErrOrderRepoMissing
	}
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return ReconcileResult{}, ErrInvalidBillID
	}
	log.Printf("[reconcile][usecase] start bill_id=%s", billID)

	bill, err := u.bills.GetByID(ctx, billID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if bill.ID == "" {
		return ReconcileResult{}, ErrBillNotFound
	}
	if bill.Status != entities.BillStatusMapped {
		return ReconcileResult{}, ErrBillNotMapped
	}
	if strings.TrimSpace(bill.OrderID) == "" {
		return u.holdMapped(ctx, bill, "No associated order found")
	}

	items, err := u.bills.ListLineItems(ctx, billID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if len(items) == 0 {
		return u.holdMapped(ctx, bill, "No line items found")
	}

	order, err := u.orders.GetByID(ctx, bill.OrderID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if order.OrderID == "" {
		return u.holdMapped(ctx, bill, fmt.Sprintf("Order %s not found", bill.OrderID))
	}
	orderItems, err := u.orders.ListLineItems(ctx, order.OrderID)
	if err != nil {
		return ReconcileResult{}, err
	}

	// Provider-info gate: rates cannot be resolved without these fields.
	if missing := missingProviderFields(bill); len(missing) > 0 {
		msg := "Missing required provider fields - " + strings.Join(missing, ", ")
		return u.transition(ctx, bill, entities.InputProviderIncomplete, msg, ReconcileResult{})
	}

	// Arthrogram bundles leave the automatic pipeline.
	if order.IsArthrogram() || entities.HasArthrogramCPT(orderItems) {
		log.Printf("[reconcile][usecase] arthrogram routing bill_id=%s order_id=%s", bill.ID, order.OrderID)
		return u.transition(ctx, bill, entities.InputArthrogram, "Routed to arthrogram processing", ReconcileResult{})
	}

	ancillary, err := u.loadAncillary(ctx)
	if err != nil {
		return ReconcileResult{}, err
	}
	categories, err := u.loadCategories(ctx, items, orderItems)
	if err != nil {
		return ReconcileResult{}, err
	}

	cmp := CompareLineItems(items, orderItems, categories, ancillary)
	res := ReconcileResult{Comparison: &cmp}
	res.UnitViolations = CheckUnits(items, ancillary)

	input, msg, ok := classify(cmp)
	if !ok {
		return u.holdMapped(ctx, bill, "Unexpected comparison result")
	}
	res.Input = input

	if d, _ := entities.DispositionFor(input); d.Status == entities.BillStatusReviewed {
		return u.acceptForPayment(ctx, bill, order, items, cmp, ancillary, res)
	}
	return u.transition(ctx, bill, input, msg, res)
}

// classify maps a comparison diff to the state-machine input, first match
// wins, in rule order.
func classify(cmp ComparisonResult) (entities.DispositionInput, string, bool) {
	switch {
	case len(cmp.BilledNotOrdered) == 0 && len(cmp.OrderedNotBilled) == 0:
		return entities.InputFullMatch, "", true
	case cmp.DistinctBilled < cmp.DistinctOrdered && cmp.AllBilledSatisfied():
		return entities.InputBilledSubset, "", true
	case !cmp.Overlap():
		return entities.InputNoOverlap, "Bill CPT codes completely mismatch with order", true
	case len(cmp.BilledNotOrdered) > 0:
		return entities.InputBilledExcess,
			"Bill contains additional non-ancillary CPT codes not in order: " + strings.Join(cmp.BilledNotOrdered, ", "), true
	}
	return "", "", false
}

// acceptForPayment handles the REVIEWED path: resolve rates, write line
// decisions, mark the matched order lines reviewed.
func (u *ReconcileUseCase) acceptForPayment(
	ctx context.Context,
	bill entities.Bill,
	order entities.Order,
	items []entities.BillLineItem,
	cmp ComparisonResult,
	ancillary map[string]struct{},
	res ReconcileResult,
) (ReconcileResult, error) {
	if u.resolver == nil {
		return ReconcileResult{}, ErrRateSourceMissing
	}
	var rateErr string
	for _, li := range items {
		lr, err := u.resolver.ResolveLine(ctx, bill, order.OrderID, li, ancillary)
		if err != nil {
			return ReconcileResult{}, err
		}
		res.LineRates = append(res.LineRates, lr)
		if lr.Resolved() {
			if err := u.bills.UpdateLineDecision(ctx, li.ID, entities.DecisionApproved, lr.Rate, ""); err != nil {
				return ReconcileResult{}, err
			}
		} else {
			if err := u.bills.UpdateLineDecision(ctx, li.ID, entities.DecisionDenied, nil, lr.Reason); err != nil {
				return ReconcileResult{}, err
			}
			if rateErr == "" {
				rateErr = fmt.Sprintf("Rate validation failed for CPT %s: %s", lr.CPTCode, lr.Reason)
			}
		}
	}
	if rateErr != "" {
		return u.transition(ctx, bill, entities.InputRateFailure, rateErr, res)
	}

	matched := nonAncillary(cmp.MatchedCPTs(), ancillary)
	if len(matched) > 0 {
		if err := u.orders.MarkLineItemsReviewed(ctx, order.OrderID, bill.ID, matched); err != nil {
			return ReconcileResult{}, err
		}
		log.Printf("[reconcile][usecase] marked order lines reviewed bill_id=%s order_id=%s cpts=%d", bill.ID, order.OrderID, len(matched))
	}
	return u.transition(ctx, bill, res.Input, "", res)
}

// transition applies the state machine and persists the outcome. Unit
// violations are additive: appended to the message, never overriding the
// chosen status.
func (u *ReconcileUseCase) transition(
	ctx context.Context,
	bill entities.Bill,
	input entities.DispositionInput,
	msg string,
	res ReconcileResult,
) (ReconcileResult, error) {
	d, ok := entities.DispositionFor(input)
	if !ok {
		return u.holdMapped(ctx, bill, fmt.Sprintf("No disposition for classification %q", input))
	}
	for _, v := range res.UnitViolations {
		part := fmt.Sprintf("CPT %s has %d units", v.CPTCode, v.Units)
		if msg == "" {
			msg = "Units review needed: " + part
		} else {
			msg += "; " + part
		}
	}
	if err := u.bills.UpdateDisposition(ctx, bill.ID, d.Status, d.Action, msg); err != nil {
		return ReconcileResult{}, err
	}
	log.Printf("[reconcile][usecase] disposition bill_id=%s input=%s status=%s action=%s", bill.ID, input, d.Status, d.Action)
	res.BillID = bill.ID
	res.Status = d.Status
	res.Action = d.Action
	res.Message = msg
	res.Input = input
	return res, nil
}

// holdMapped records a failure without leaving MAPPED, so the bill is
// retryable after correction.
func (u *ReconcileUseCase) holdMapped(ctx context.Context, bill entities.Bill, msg string) (ReconcileResult, error) {
	log.Printf("[reconcile][usecase] holding bill in MAPPED bill_id=%s reason=%q", bill.ID, msg)
	if err := u.bills.UpdateDisposition(ctx, bill.ID, entities.BillStatusMapped, bill.Action, msg); err != nil {
		return ReconcileResult{}, err
	}
	return ReconcileResult{BillID: bill.ID, Status: entities.BillStatusMapped, Action: bill.Action, Message: msg}, nil
}

func (u *ReconcileUseCase) loadAncillary(ctx context.Context) (map[string]struct{}, error) {
	if u.ancillary == nil {
		return map[string]struct{}{}, nil
	}
	return u.ancillary.AncillarySet(ctx)
}

func (u *ReconcileUseCase) loadCategories(ctx context.Context, items []entities.BillLineItem, orderItems []entities.OrderLineItem) (map[string]entities.ProcedureCategory, error) {
	if u.taxonomy == nil {
		return nil, ErrTaxonomyMissing
	}
	seen := map[string]struct{}{}
	var codes []string
	for _, li := range items {
		if cpt := li.NormalizedCPT(); cpt != "" {
			if _, ok := seen[cpt]; !ok {
				seen[cpt] = struct{}{}
				codes = append(codes, cpt)
			}
		}
	}
	for _, li := range orderItems {
		if cpt := li.NormalizedCPT(); cpt != "" {
			if _, ok := seen[cpt]; !ok {
				seen[cpt] = struct{}{}
				codes = append(codes, cpt)
			}
		}
	}
	sort.Strings(codes)
	return u.taxonomy.Categories(ctx, codes)
}

// requiredProviderFields mirrors the fields a payable bill must carry
// before rate resolution.
var requiredProviderFields = []struct {
	name  string
	value func(entities.Bill) string
}{
	{"Billing Name", func(b entities.Bill) string { return b.ProviderName }},
	{"Billing Address 1", func(b entities.Bill) string { return b.ProviderAddr.Line1 }},
	{"Billing Address City", func(b entities.Bill) string { return b.ProviderAddr.City }},
	{"Billing Address State", func(b entities.Bill) string { return b.ProviderAddr.State }},
	{"Billing Address Postal Code", func(b entities.Bill) string { return b.ProviderAddr.PostalCode }},
	{"TIN", func(b entities.Bill) string { return b.ProviderTIN }},
	{"Provider Network", func(b entities.Bill) string { return b.Network }},
}

func missingProviderFields(b entities.Bill) []string {
	var missing []string
	for _, f := range requiredProviderFields {
		if strings.TrimSpace(f.value(b)) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func nonAncillary(cpts []string, ancillary map[string]struct{}) []string {
	out := make([]string, 0, len(cpts))
	for _, c := range cpts {
		if _, anc := ancillary[c]; !anc {
			out = append(out, c)
		}
	}
	return out
}

// BatchSummary aggregates one reconciliation run.

type BatchSummary struct {
	Total      int `json:"total"`
	Reviewed   int `json:"reviewed"`
	Flagged    int `json:"flagged"`
	Arthrogram int `json:"arthrogram"`
	Held       int `json:"held"`
	Errors     int `json:"errors"`
}

// RunBatch reconciles every MAPPED bill. Bills are independent, so the
// comparison and rate stages fan out across a bounded worker pool; a
// failing bill is recorded and skipped, never aborting the batch.
func (u *ReconcileUseCase) RunBatch(ctx context.Context, limit, workers int) (BatchSummary, error) {
	if u.bills == nil {
		return BatchSummary{}, ErrRepoNotAttached
	}
	if workers < 1 {
		workers = 1
	}
	bills, err := u.bills.ListByStatus(ctx, entities.BillStatusMapped, limit)
	if err != nil {
		return BatchSummary{}, err
	}
	log.Printf("[reconcile][usecase] batch start bills=%d workers=%d", len(bills), workers)

	results := make([]ReconcileResult, len(bills))
	errs := make([]error, len(bills))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, b := range bills {
		wg.Add(1)
		go func(idx int, billID string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			}
			defer func() { <-sem }()
			results[idx], errs[idx] = u.ReconcileBill(ctx, billID)
		}(i, b.ID)
	}
	wg.Wait()

	summary := BatchSummary{Total: len(bills)}
	for i := range bills {
		switch {
		case errs[i] != nil:
			summary.Errors++
			log.Printf("[reconcile][usecase] batch bill failed bill_id=%s err=%v", bills[i].ID, errs[i])
		case results[i].Status == entities.BillStatusReviewed:
			summary.Reviewed++
		case results[i].Status == entities.BillStatusReviewFlag:
			summary.Flagged++
		case results[i].Status == entities.BillStatusArthrogram:
			summary.Arthrogram++
		default:
			summary.Held++
		}
	}
	log.Printf("[reconcile][usecase] batch done total=%d reviewed=%d flagged=%d arthrogram=%d held=%d errors=%d",
		summary.Total, summary.Reviewed, summary.Flagged, summary.Arthrogram, summary.Held, summary.Errors)
	return summary, nil
}
