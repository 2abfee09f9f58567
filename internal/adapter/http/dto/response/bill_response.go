package response

import (
	"time"

	"billreview/internal/domain/entities"
)

type BillLineItemResponse struct {
	ID               string   `json:"id"`
	CPTCode          string   `json:"cpt_code"`
	Modifier         string   `json:"modifier,omitempty"`
	Units            int      `json:"units"`
	ChargeAmount     float64  `json:"charge_amount"`
	AllowedAmount    *float64 `json:"allowed_amount,omitempty"`
	Decision         string   `json:"decision"`
	ReasonCode       string   `json:"reason_code,omitempty"`
	DateOfService    string   `json:"date_of_service,omitempty"`
	PlaceOfService   string   `json:"place_of_service,omitempty"`
	DiagnosisPointer string   `json:"diagnosis_pointer,omitempty"`
}

type BillResponse struct {
	ID            string                 `json:"id"`
	ClaimID       string                 `json:"claim_id,omitempty"`
	OrderID       string                 `json:"order_id,omitempty"`
	PatientName   string                 `json:"patient_name"`
	PatientDOB    string                 `json:"patient_dob,omitempty"`
	ProviderName  string                 `json:"billing_provider_name"`
	ProviderTIN   string                 `json:"billing_provider_tin,omitempty"`
	ProviderNPI   string                 `json:"billing_provider_npi,omitempty"`
	Network       string                 `json:"provider_network,omitempty"`
	TotalCharge   float64                `json:"total_charge"`
	AccountNumber string                 `json:"account_number,omitempty"`
	Status        string                 `json:"status"`
	Action        string                 `json:"action,omitempty"`
	LastError     string                 `json:"last_error,omitempty"`
	Paid          bool                   `json:"bill_paid"`
	CreatedAt     time.Time              `json:"created_at"`
	LineItems     []BillLineItemResponse `json:"service_lines,omitempty"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		ID:            b.ID,
		ClaimID:       b.ClaimID,
		OrderID:       b.OrderID,
		PatientName:   b.PatientName,
		PatientDOB:    b.PatientDOB,
		ProviderName:  b.ProviderName,
		ProviderTIN:   b.ProviderTIN,
		ProviderNPI:   b.ProviderNPI,
		Network:       b.Network,
		TotalCharge:   b.TotalCharge,
		AccountNumber: b.AccountNumber,
		Status:        string(b.Status),
		Action:        string(b.Action),
		LastError:     b.LastError,
		Paid:          b.Paid,
		CreatedAt:     b.CreatedAt,
	}
}

func FromBillWithLines(b entities.Bill, items []entities.BillLineItem) BillResponse {
	resp := FromBill(b)
	resp.LineItems = make([]BillLineItemResponse, 0, len(items))
	for _, li := range items {
		resp.LineItems = append(resp.LineItems, FromBillLineItem(li))
	}
	return resp
}

func FromBillLineItem(li entities.BillLineItem) BillLineItemResponse {
	return BillLineItemResponse{
		ID:               li.ID,
		CPTCode:          li.CPTCode,
		Modifier:         li.Modifier,
		Units:            li.Units,
		ChargeAmount:     li.ChargeAmount,
		AllowedAmount:    li.AllowedAmount,
		Decision:         string(li.Decision),
		ReasonCode:       li.ReasonCode,
		DateOfService:    li.DateOfService,
		PlaceOfService:   li.PlaceOfService,
		DiagnosisPointer: li.DiagnosisPointer,
	}
}
