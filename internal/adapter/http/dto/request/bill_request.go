package request

import (
	"strings"

	"billreview/internal/domain/entities"
)

// BillLineItemRequest is one CMS-1500 service line as produced by the
// extraction pipeline.
type BillLineItemRequest struct {
	CPTCode          string  `json:"cpt_code" binding:"required"`
	Modifier         string  `json:"modifier"`
	Units            int     `json:"units"`
	ChargeAmount     float64 `json:"charge_amount"`
	DateOfService    string  `json:"date_of_service"`
	PlaceOfService   string  `json:"place_of_service"`
	DiagnosisPointer string  `json:"diagnosis_pointer"`
}

// BillRequest is the intake payload: one extracted scanned bill. Field names
// mirror the extraction output so the pipeline can post its JSON untouched.
type BillRequest struct {
	ClaimID         string                `json:"claim_id"`
	OrderID         string                `json:"order_id"`
	PatientName     string                `json:"patient_name"`
	PatientDOB      string                `json:"patient_dob"`
	BillingName     string                `json:"billing_provider_name"`
	BillingAddress1 string                `json:"billing_provider_address1"`
	BillingAddress2 string                `json:"billing_provider_address2"`
	BillingCity     string                `json:"billing_provider_city"`
	BillingState    string                `json:"billing_provider_state"`
	BillingZip      string                `json:"billing_provider_postal_code"`
	BillingTIN      string                `json:"billing_provider_tin"`
	BillingNPI      string                `json:"billing_provider_npi"`
	Network         string                `json:"provider_network"`
	TotalCharge     float64               `json:"total_charge"`
	AccountNumber   string                `json:"patient_account_no"`
	LineItems       []BillLineItemRequest `json:"service_lines"`
}

// ToEntities maps the payload onto domain entities. IDs and status are left
// empty; the intake use case owns identity and disposition.
func (r BillRequest) ToEntities() (entities.Bill, []entities.BillLineItem) {
	bill := entities.Bill{
		ClaimID:      strings.TrimSpace(r.ClaimID),
		OrderID:      strings.TrimSpace(r.OrderID),
		PatientName:  strings.TrimSpace(r.PatientName),
		PatientDOB:   strings.TrimSpace(r.PatientDOB),
		ProviderName: strings.TrimSpace(r.BillingName),
		ProviderAddr: entities.Address{
			Line1:      strings.TrimSpace(r.BillingAddress1),
			Line2:      strings.TrimSpace(r.BillingAddress2),
			City:       strings.TrimSpace(r.BillingCity),
			State:      strings.TrimSpace(r.BillingState),
			PostalCode: strings.TrimSpace(r.BillingZip),
		},
		ProviderTIN:   strings.TrimSpace(r.BillingTIN),
		ProviderNPI:   strings.TrimSpace(r.BillingNPI),
		Network:       strings.TrimSpace(r.Network),
		TotalCharge:   r.TotalCharge,
		AccountNumber: strings.TrimSpace(r.AccountNumber),
	}

	items := make([]entities.BillLineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, entities.BillLineItem{
			CPTCode:          strings.TrimSpace(li.CPTCode),
			Modifier:         strings.TrimSpace(li.Modifier),
			Units:            li.Units,
			ChargeAmount:     li.ChargeAmount,
			DateOfService:    strings.TrimSpace(li.DateOfService),
			PlaceOfService:   strings.TrimSpace(li.PlaceOfService),
			DiagnosisPointer: strings.TrimSpace(li.DiagnosisPointer),
		})
	}
	return bill, items
}

// EscalateRequest carries the mandatory reviewer message.
type EscalateRequest struct {
	Message string `json:"message" binding:"required"`
}

// DenyRequest carries the mandatory denial reason code.
type DenyRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// LineOverrideRequest replaces the automatic decision on one line item.
// Amount is required for approved and reduced decisions, reason for
// denials.
type LineOverrideRequest struct {
	Decision string   `json:"decision" binding:"required"`
	Amount   *float64 `json:"amount,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

// BatchRequest tunes one batch run. Zero values mean "no limit" and the
// default worker count.
type BatchRequest struct {
	Limit   int `json:"limit"`
	Workers int `json:"workers"`
}
