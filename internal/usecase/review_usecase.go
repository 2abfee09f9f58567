package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"billreview/internal/domain/entities"
	"billreview/internal/usecase/interfaces"
)

var (
	ErrEscalationMessageRequired = errors.New("escalation message required")
	ErrDenialReasonRequired      = errors.New("denial reason required")
	ErrBillTerminal              = errors.New("bill is in a terminal status")
	ErrResetNotAllowed           = errors.New("completed bills cannot be reset")
	ErrLineNotFound              = errors.New("line item not found on bill")
	ErrInvalidLineDecision       = errors.New("invalid line decision")
	ErrAmountRequired            = errors.New("allowed amount required for this decision")
)

// IReviewUseCase covers the human-driven bill operations. These states are
// never produced by the automatic engine; every one requires reviewer
// input.

type IReviewUseCase interface {
	GetBill(ctx context.Context, billID string) (entities.Bill, []entities.BillLineItem, error)
	ListQueue(ctx context.Context, status entities.BillStatus, limit int) ([]entities.Bill, error)
	Escalate(ctx context.Context, billID, message string) (entities.Bill, error)
	Deny(ctx context.Context, billID, reason string) (entities.Bill, error)
	MarkGarbage(ctx context.Context, billID string) (entities.Bill, error)
	Reset(ctx context.Context, billID string) (entities.Bill, error)
	OverrideLine(ctx context.Context, billID, lineID string, decision entities.LineDecision, allowedAmount *float64, reason string) (entities.BillLineItem, error)
}

type ReviewUseCase struct {
	bills interfaces.IBillRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(bills interfaces.IBillRepository) *ReviewUseCase {
	return &ReviewUseCase{bills: bills}
}

func (u *ReviewUseCase) GetBill(ctx context.Context, billID string) (entities.Bill, []entities.BillLineItem, error) {
	bill, err := u.load(ctx, billID)
	if err != nil {
		return entities.Bill{}, nil, err
	}
	items, err := u.bills.ListLineItems(ctx, bill.ID)
	if err != nil {
		return entities.Bill{}, nil, err
	}
	return bill, items, nil
}

func (u *ReviewUseCase) ListQueue(ctx context.Context, status entities.BillStatus, limit int) ([]entities.Bill, error) {
	if u.bills == nil {
		return nil, ErrRepoNotAttached
	}
	return u.bills.ListByStatus(ctx, status, limit)
}

// Escalate moves a bill to ESCALATE. The free-text message is mandatory:
// an escalation without context is useless to the next reviewer.
func (u *ReviewUseCase) Escalate(ctx context.Context, billID, message string) (entities.Bill, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.Bill{}, ErrEscalationMessageRequired
	}
	return u.manual(ctx, billID, entities.BillStatusEscalate, entities.ActionResolveEscalation, message)
}

// Deny moves a bill to DENIED. The reason deterministically selects the
// denial action token.
func (u *ReviewUseCase) Deny(ctx context.Context, billID, reason string) (entities.Bill, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Bill{}, ErrDenialReasonRequired
	}
	return u.manual(ctx, billID, entities.BillStatusDenied, entities.DenialAction(reason), "")
}

// MarkGarbage flags a bill that is not a valid claim document at all.
func (u *ReviewUseCase) MarkGarbage(ctx context.Context, billID string) (entities.Bill, error) {
	return u.manual(ctx, billID, entities.BillStatusGarbage, entities.ActionToReview, "")
}

// Reset returns a non-terminal bill to MAPPED for reprocessing, clearing
// the accumulated error text. Reprocessing is always safe: duplicate keys
// and EOBR numbers are recomputed from the ledger, never from counters.
func (u *ReviewUseCase) Reset(ctx context.Context, billID string) (entities.Bill, error) {
	bill, err := u.load(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if !entities.CanReset(bill.Status) {
		return entities.Bill{}, ErrResetNotAllowed
	}
	if err := u.bills.UpdateDisposition(ctx, bill.ID, entities.BillStatusMapped, entities.ActionToReview, ""); err != nil {
		return entities.Bill{}, err
	}
	log.Printf("[review][usecase] reset bill_id=%s from=%s", bill.ID, bill.Status)
	bill.Status = entities.BillStatusMapped
	bill.Action = entities.ActionToReview
	bill.LastError = ""
	return bill, nil
}

// OverrideLine lets a reviewer replace the automatic decision on a single
// line item. Approved and reduced decisions need an allowed amount; a
// denial needs a reason code. Terminal bills are immutable.
func (u *ReviewUseCase) OverrideLine(ctx context.Context, billID, lineID string, decision entities.LineDecision, allowedAmount *float64, reason string) (entities.BillLineItem, error) {
	bill, err := u.load(ctx, billID)
	if err != nil {
		return entities.BillLineItem{}, err
	}
	if bill.Status.Terminal() {
		return entities.BillLineItem{}, ErrBillTerminal
	}

	switch decision {
	case entities.DecisionApproved, entities.DecisionReduced:
		if allowedAmount == nil {
			return entities.BillLineItem{}, ErrAmountRequired
		}
		reason = ""
	case entities.DecisionDenied:
		if strings.TrimSpace(reason) == "" {
			return entities.BillLineItem{}, ErrDenialReasonRequired
		}
		allowedAmount = nil
	default:
		return entities.BillLineItem{}, ErrInvalidLineDecision
	}

	items, err := u.bills.ListLineItems(ctx, bill.ID)
	if err != nil {
		return entities.BillLineItem{}, err
	}
	var target *entities.BillLineItem
	for i := range items {
		if items[i].ID == lineID {
			target = &items[i]
			break
		}
	}
	if target == nil {
		return entities.BillLineItem{}, ErrLineNotFound
	}

	if err := u.bills.UpdateLineDecision(ctx, lineID, decision, allowedAmount, reason); err != nil {
		return entities.BillLineItem{}, err
	}
	log.Printf("[review][usecase] line override bill_id=%s line_id=%s decision=%s", bill.ID, lineID, decision)
	target.Decision = decision
	target.AllowedAmount = allowedAmount
	target.ReasonCode = reason
	return *target, nil
}

func (u *ReviewUseCase) manual(ctx context.Context, billID string, target entities.BillStatus, action entities.BillAction, message string) (entities.Bill, error) {
	bill, err := u.load(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if !entities.CanManualTransition(bill.Status, target) {
		return entities.Bill{}, ErrBillTerminal
	}
	if err := u.bills.UpdateDisposition(ctx, bill.ID, target, action, message); err != nil {
		return entities.Bill{}, err
	}
	log.Printf("[review][usecase] manual transition bill_id=%s from=%s to=%s action=%s", bill.ID, bill.Status, target, action)
	bill.Status = target
	bill.Action = action
	bill.LastError = message
	return bill, nil
}

func (u *ReviewUseCase) load(ctx context.Context, billID string) (entities.Bill, error) {
	if u.bills == nil {
		return entities.Bill{}, ErrRepoNotAttached
	}
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return entities.Bill{}, ErrInvalidBillID
	}
	bill, err := u.bills.GetByID(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if bill.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	return bill, nil
}
