package entities

import "time"

// DuplicateClass is the outcome of checking an accepted bill against the
// historical export ledger and the current export batch.

type DuplicateClass string

const (
	// DuplicateExact: the identical duplicate key already exists; payment
	// is withheld.
	DuplicateExact DuplicateClass = "exact"
	// DuplicateSameOrder: the same order appears in history with a
	// different procedure-code set; flagged for review but released.
	DuplicateSameOrder DuplicateClass = "same_order_different_cpts"
	// DuplicateNone: first payment for this (order, code set).
	DuplicateNone DuplicateClass = "none"
)

// Flags for the export row. YELLOW marks a same-order warning that does not
// block payment.
const (
	FlagYes    = "Y"
	FlagNo     = "N"
	FlagYellow = "YELLOW"
)

// ExportRow is one accepted bill's payment-export record. Rows are appended
// to the ledger and are the only persisted carrier of duplicate keys and
// EOBR numbers.
//
// Storage model (Postgres export_ledger):
//   - append-only; queried by duplicate_key equality, order_id equality and
//     eobr_number prefix.

type ExportRow struct {
	BillID         string    `json:"bill_id"`
	OrderID        string    `json:"order_id"`
	ReleasePayment string    `json:"release_payment"`
	DuplicateCheck string    `json:"duplicate_check"`
	DuplicateKey   string    `json:"full_duplicate_key"`
	EOBRNumber     string    `json:"eobr_number"`
	Vendor         string    `json:"vendor"`
	MailingAddress string    `json:"mailing_address"`
	Terms          string    `json:"terms"`
	BillDate       string    `json:"bill_date"`
	DueDate        string    `json:"due_date"`
	Description    string    `json:"description"`
	Memo           string    `json:"memo"`
	Amount         float64   `json:"amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// Released reports whether the row authorizes payment.
func (r ExportRow) Released() bool {
	return r.ReleasePayment == FlagYes
}
