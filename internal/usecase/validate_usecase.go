package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	"billreview/internal/domain/entities"
	"billreview/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrInvalidBillID   = errors.New("invalid bill id")
	ErrNoLineItems     = errors.New("bill has no line items")
	ErrRepoNotAttached = errors.New("bill repository not configured")
)

// ChargeTolerance is the allowed absolute difference between the reported
// total charge and the sum of line-item charges.
const ChargeTolerance = 10.00

var (
	cptPattern = regexp.MustCompile(`^(\d{5}|[A-Za-z]\d{4})$`)
	npiPattern = regexp.MustCompile(`^\d{10}$`)
)

// serviceDateLayouts are the date shapes the extraction pipeline produces.
var serviceDateLayouts = []string{"01/02/06", "01/02/2006", "2006-01-02"}

// IValidateUseCase is the pre-reconciliation gate for freshly extracted
// bills.
//
// Every check is independently reportable: failures are collected and
// appended to the bill's error field so a reviewer sees the full list.

type IValidateUseCase interface {
	Intake(ctx context.Context, bill entities.Bill, items []entities.BillLineItem) (entities.Bill, error)
	Revalidate(ctx context.Context, billID string) (entities.Bill, error)
}

type ValidateUseCase struct {
	repo interfaces.IBillRepository
	now  func() time.Time
}

var _ IValidateUseCase = (*ValidateUseCase)(nil)

func NewValidateUseCase(repo interfaces.IBillRepository) *ValidateUseCase {
	return &ValidateUseCase{repo: repo, now: time.Now}
}

// Intake persists an extracted bill after running the validation gate.
// The bill always lands in VALID/to_map or INVALID/to_validate; validation
// problems are never an error return.
func (u *ValidateUseCase) Intake(ctx context.Context, bill entities.Bill, items []entities.BillLineItem) (entities.Bill, error) {
	if u.repo == nil {
		return entities.Bill{}, ErrRepoNotAttached
	}
	if bill.ID == "" {
		bill.ID = uuid.NewString()
	}
	bill.CreatedAt = u.now().UTC()
	bill.Status = entities.BillStatusReceived
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		items[i].BillID = bill.ID
		items[i].Decision = entities.DecisionPending
	}

	u.apply(&bill, items)

	created, err := u.repo.Create(ctx, bill, items)
	if err != nil {
		log.Printf("[validate][usecase] intake persist failed bill_id=%s err=%v", bill.ID, err)
		return entities.Bill{}, err
	}
	log.Printf("[validate][usecase] intake done bill_id=%s status=%s action=%s lines=%d", created.ID, created.Status, created.Action, len(items))
	return created, nil
}

// Revalidate re-runs the gate on a stored bill, typically after a reviewer
// corrected extraction mistakes.
func (u *ValidateUseCase) Revalidate(ctx context.Context, billID string) (entities.Bill, error) {
	if u.repo == nil {
		return entities.Bill{}, ErrRepoNotAttached
	}
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return entities.Bill{}, ErrInvalidBillID
	}
	bill, err := u.repo.GetByID(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if bill.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	items, err := u.repo.ListLineItems(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}

	bill.LastError = ""
	u.apply(&bill, items)
	if err := u.repo.UpdateDisposition(ctx, bill.ID, bill.Status, bill.Action, bill.LastError); err != nil {
		return entities.Bill{}, err
	}
	log.Printf("[validate][usecase] revalidate done bill_id=%s status=%s", bill.ID, bill.Status)
	return bill, nil
}

func (u *ValidateUseCase) apply(bill *entities.Bill, items []entities.BillLineItem) {
	failures := u.Check(*bill, items)
	if len(failures) == 0 {
		bill.Status = entities.BillStatusValid
		bill.Action = entities.ActionToMap
		return
	}
	bill.Status = entities.BillStatusInvalid
	bill.Action = entities.ActionToValidate
	for _, f := range failures {
		bill.AppendError(f)
	}
	log.Printf("[validate][usecase] bill failed validation bill_id=%s failures=%d", bill.ID, len(failures))
}

// Check runs every gate check and returns the complete failure list.
func (u *ValidateUseCase) Check(bill entities.Bill, items []entities.BillLineItem) []string {
	var failures []string

	if strings.TrimSpace(bill.PatientName) == "" {
		failures = append(failures, "Missing patient name")
	}
	if bill.TotalCharge <= 0 {
		failures = append(failures, "Missing total charge")
	}
	if npi := strings.TrimSpace(bill.ProviderNPI); npi != "" && !npiPattern.MatchString(npi) {
		failures = append(failures, fmt.Sprintf("Invalid NPI format: %s", npi))
	}

	if len(items) == 0 {
		failures = append(failures, "No line items found")
		return failures
	}

	now := u.now()
	lineTotal := 0.0
	for _, li := range items {
		cpt := li.NormalizedCPT()
		if !cptPattern.MatchString(cpt) {
			failures = append(failures, fmt.Sprintf("Invalid CPT code format: %q", li.CPTCode))
		}
		if li.ChargeAmount <= 0 {
			failures = append(failures, fmt.Sprintf("Invalid charge amount for CPT %s: %.2f", cpt, li.ChargeAmount))
		}
		if li.Units < 0 {
			failures = append(failures, fmt.Sprintf("Invalid unit count for CPT %s: %d", cpt, li.Units))
		}
		if dos, err := ParseServiceDate(li.DateOfService); err != nil {
			failures = append(failures, fmt.Sprintf("Invalid date of service: %q", li.DateOfService))
		} else if dos.After(now) {
			failures = append(failures, fmt.Sprintf("Future date of service: %s", li.DateOfService))
		}
		lineTotal += li.ChargeAmount
	}

	if bill.TotalCharge > 0 && math.Abs(lineTotal-bill.TotalCharge) > ChargeTolerance {
		failures = append(failures, fmt.Sprintf("Total charge mismatch: %.2f vs line items %.2f", bill.TotalCharge, lineTotal))
	}
	return failures
}

// ParseServiceDate parses a date of service in any of the shapes the
// extraction pipeline emits. Date ranges keep their first date.
func ParseServiceDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, " - "); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	for _, layout := range serviceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date of service %q", s)
}
