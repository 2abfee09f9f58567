package entities

import "strings"

// Order is the pre-authorized service request a bill is reconciled against.
// Read-only to the reconciliation engine.
//
// Storage model (DynamoDB):
//   - PK: order_id
//
// Identity notes:
//   - OrderID scopes duplicate detection.
//   - LegacyRecordID scopes EOBR numbering; it exists only for continuity
//     with the pre-existing record system and may differ from OrderID.
//     The two must never be collapsed into one field.

type Order struct {
	OrderID        string `json:"order_id"`
	LegacyRecordID string `json:"legacy_record_id"`
	BundleType     string `json:"bundle_type,omitempty"`
	PatientName    string `json:"patient_name"`
	PatientDOB     string `json:"patient_dob,omitempty"`
	ClaimNumber    string `json:"claim_number,omitempty"`
	ProviderID     string `json:"provider_id,omitempty"`
	BillsReceived  int    `json:"bills_received"`
	BillsPaid      int    `json:"bills_paid"`
}

// IsArthrogram reports whether the order is an arthrogram bundle. Arthrogram
// bills are routed to specialist processing instead of the automatic engine.
func (o Order) IsArthrogram() bool {
	return strings.EqualFold(strings.TrimSpace(o.BundleType), "arthrogram")
}

// OrderLineItem is one authorized service line on an order. Read-only to the
// engine except ReviewedByBillID, which records "matched by bill X".
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id

type OrderLineItem struct {
	ID               string   `json:"id"`
	OrderID          string   `json:"order_id"`
	DateOfService    string   `json:"date_of_service,omitempty"`
	CPTCode          string   `json:"cpt_code"`
	Modifier         string   `json:"modifier,omitempty"`
	Units            int      `json:"units"`
	Description      string   `json:"description,omitempty"`
	Charge           float64  `json:"charge,omitempty"`
	LineNumber       int      `json:"line_number"`
	ReviewedByBillID string   `json:"reviewed_by_bill_id,omitempty"`
	PaidRate         *float64 `json:"paid_rate,omitempty"`
}

// NormalizedCPT returns the canonical procedure code for comparison.
func (li OrderLineItem) NormalizedCPT() string {
	return NormalizeCPT(li.CPTCode)
}

// ArthrogramCPTs are procedure codes that mark an order as an arthrogram
// even when its bundle type is not set.
var ArthrogramCPTs = map[string]struct{}{
	"20610": {},
	"20611": {},
	"77002": {},
	"77003": {},
	"77021": {},
}

// HasArthrogramCPT reports whether any order line carries an arthrogram code.
func HasArthrogramCPT(items []OrderLineItem) bool {
	for _, li := range items {
		if _, ok := ArthrogramCPTs[li.NormalizedCPT()]; ok {
			return true
		}
	}
	return false
}
