package entities

import (
	"strings"
	"time"
)

// BillStatus represents the lifecycle of a provider bill.
//
// Domain notes:
//   - RECEIVED bills come from the extraction pipeline and have not been
//     validated yet.
//   - MAPPED is the entry state for reconciliation: an order has been
//     assigned and the bill is waiting to be compared against it.
//   - DENIED, GARBAGE and COMPLETED are terminal; everything else can be
//     reset back to MAPPED for reprocessing.

type BillStatus string

const (
	BillStatusReceived   BillStatus = "RECEIVED"
	BillStatusInvalid    BillStatus = "INVALID"
	BillStatusValid      BillStatus = "VALID"
	BillStatusMapped     BillStatus = "MAPPED"
	BillStatusReviewed   BillStatus = "REVIEWED"
	BillStatusReviewFlag BillStatus = "REVIEW_FLAG"
	BillStatusEscalate   BillStatus = "ESCALATE"
	BillStatusDenied     BillStatus = "DENIED"
	BillStatusGarbage    BillStatus = "GARBAGE"
	BillStatusArthrogram BillStatus = "ARTHROGRAM"
	BillStatusCompleted  BillStatus = "COMPLETED"
)

// Terminal reports whether the status permits no further automatic
// transitions. Terminal bills only change via an explicit reset, which is
// itself refused for COMPLETED.
func (s BillStatus) Terminal() bool {
	switch s {
	case BillStatusDenied, BillStatusGarbage, BillStatusCompleted:
		return true
	}
	return false
}

// BillAction is the operator-facing work queue token paired with a status.

type BillAction string

const (
	ActionToValidate        BillAction = "to_validate"
	ActionToMap             BillAction = "to_map"
	ActionToReview          BillAction = "to_review"
	ActionApplyRate         BillAction = "apply_rate"
	ActionUpdateProvInfo    BillAction = "update_prov_info"
	ActionReviewRates       BillAction = "review_rates"
	ActionAddressMismatch   BillAction = "address_line_item_mismatch"
	ActionCompleteMismatch  BillAction = "complete_line_item_mismatch"
	ActionResolveEscalation BillAction = "resolve_escalation"
)

// DenialAction returns the action token for a manual denial. The reason is
// embedded in the token so the downstream EOBR tooling can print it without
// another lookup (e.g. "deny-CO-50").
func DenialAction(reason string) BillAction {
	return BillAction("deny-" + strings.TrimSpace(reason))
}

// LineDecision is the per-line outcome written by rate resolution or by a
// manual override.

type LineDecision string

const (
	DecisionPending  LineDecision = "pending"
	DecisionApproved LineDecision = "approved"
	DecisionReduced  LineDecision = "reduced"
	DecisionDenied   LineDecision = "denied"
)

// Bill is one intake unit: a provider's invoice extracted from a scanned
// CMS-1500 form.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status, sorted by created_at
//
// Ownership:
//   - Created by the intake pipeline; status/action/last_error are written
//     only by the disposition engine and manual review operations.

type Bill struct {
	ID            string     `json:"id"`
	ClaimID       string     `json:"claim_id"`
	OrderID       string     `json:"order_id"`
	PatientName   string     `json:"patient_name"`
	PatientDOB    string     `json:"patient_dob,omitempty"`
	ProviderName  string     `json:"billing_provider_name"`
	ProviderAddr  Address    `json:"billing_provider_address"`
	ProviderTIN   string     `json:"billing_provider_tin"`
	ProviderNPI   string     `json:"billing_provider_npi"`
	Network       string     `json:"provider_network,omitempty"`
	TotalCharge   float64    `json:"total_charge"`
	AccountNumber string     `json:"account_number,omitempty"`
	Status        BillStatus `json:"status"`
	Action        BillAction `json:"action,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
	Paid          bool       `json:"bill_paid"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AppendError concatenates a failure onto the bill's error field so a
// reviewer sees the complete list, not just the most recent check.
func (b *Bill) AppendError(msg string) {
	if msg == "" {
		return
	}
	if b.LastError == "" {
		b.LastError = msg
		return
	}
	b.LastError += "; " + msg
}

// Address groups the billing-provider mailing fields.

type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Format renders "Line1, Line2, City, State ZIP", skipping empty parts.
func (a Address) Format() string {
	parts := make([]string, 0, 3)
	if v := strings.TrimSpace(a.Line1); v != "" {
		parts = append(parts, v)
	}
	if v := strings.TrimSpace(a.Line2); v != "" {
		parts = append(parts, v)
	}
	cityStateZip := make([]string, 0, 2)
	if v := strings.TrimSpace(a.City); v != "" {
		cityStateZip = append(cityStateZip, v)
	}
	if v := strings.TrimSpace(a.State); v != "" {
		cityStateZip = append(cityStateZip, v)
	}
	if len(cityStateZip) > 0 {
		tail := strings.Join(cityStateZip, ", ")
		if v := strings.TrimSpace(a.PostalCode); v != "" {
			tail += " " + v
		}
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}

// BillLineItem is one service line on a bill. Created once at intake;
// allowed_amount and decision are written by rate resolution.

type BillLineItem struct {
	ID               string       `json:"id"`
	BillID           string       `json:"bill_id"`
	CPTCode          string       `json:"cpt_code"`
	Modifier         string       `json:"modifier,omitempty"`
	Units            int          `json:"units"`
	ChargeAmount     float64      `json:"charge_amount"`
	AllowedAmount    *float64     `json:"allowed_amount,omitempty"`
	Decision         LineDecision `json:"decision"`
	ReasonCode       string       `json:"reason_code,omitempty"`
	DateOfService    string       `json:"date_of_service"`
	PlaceOfService   string       `json:"place_of_service,omitempty"`
	DiagnosisPointer string       `json:"diagnosis_pointer,omitempty"`
}

// NormalizedCPT returns the procedure code trimmed and upper-cased, the
// canonical form used everywhere codes are compared or keyed.
func (li BillLineItem) NormalizedCPT() string {
	return NormalizeCPT(li.CPTCode)
}

// NormalizeCPT canonicalizes a procedure code for comparison.
func NormalizeCPT(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
