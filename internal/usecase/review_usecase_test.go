package usecase

import (
	"context"
	"errors"
	"testing"

	"billreview/internal/domain/entities"
	mock_interfaces "billreview/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func flaggedBill(id string) entities.Bill {
	return entities.Bill{
		ID:        id,
		OrderID:   "ORD1",
		Status:    entities.BillStatusReviewFlag,
		Action:    entities.ActionReviewRates,
		LastError: "Rate validation failed for CPT 73221: no_rate_found",
	}
}

func TestReviewUseCase_Escalate(t *testing.T) {
	ctx := context.Background()

	t.Run("message is mandatory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewReviewUseCase(mock_interfaces.NewMockIBillRepository(ctrl))

		if _, err := uc.Escalate(ctx, "bill-1", "   "); !errors.Is(err, ErrEscalationMessageRequired) {
			t.Fatalf("expected ErrEscalationMessageRequired, got %v", err)
		}
	})

	t.Run("escalates with the reviewer message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(flaggedBill("bill-1"), nil)
		bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusEscalate, entities.ActionResolveEscalation, "provider disputes the rate").Return(nil)

		bill, err := uc.Escalate(ctx, "bill-1", "provider disputes the rate")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.Status != entities.BillStatusEscalate || bill.LastError != "provider disputes the rate" {
			t.Fatalf("unexpected bill state: %+v", bill)
		}
	})

	t.Run("terminal bills are immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		done := flaggedBill("bill-1")
		done.Status = entities.BillStatusCompleted
		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(done, nil)

		if _, err := uc.Escalate(ctx, "bill-1", "too late"); !errors.Is(err, ErrBillTerminal) {
			t.Fatalf("expected ErrBillTerminal, got %v", err)
		}
	})
}

func TestReviewUseCase_Deny(t *testing.T) {
	ctx := context.Background()

	t.Run("reason is mandatory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewReviewUseCase(mock_interfaces.NewMockIBillRepository(ctrl))

		if _, err := uc.Deny(ctx, "bill-1", ""); !errors.Is(err, ErrDenialReasonRequired) {
			t.Fatalf("expected ErrDenialReasonRequired, got %v", err)
		}
	})

	t.Run("reason selects the denial action token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(flaggedBill("bill-1"), nil)
		bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusDenied, entities.BillAction("deny-duplicate_billing"), "").Return(nil)

		bill, err := uc.Deny(ctx, "bill-1", "duplicate_billing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.Action != entities.BillAction("deny-duplicate_billing") {
			t.Fatalf("unexpected action: %s", bill.Action)
		}
	})
}

func TestReviewUseCase_MarkGarbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bills := mock_interfaces.NewMockIBillRepository(ctrl)
	uc := NewReviewUseCase(bills)

	bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(flaggedBill("bill-1"), nil)
	bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusGarbage, entities.ActionToReview, "").Return(nil)

	bill, err := uc.MarkGarbage(context.Background(), "bill-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bill.Status != entities.BillStatusGarbage {
		t.Fatalf("unexpected status: %s", bill.Status)
	}
}

func TestReviewUseCase_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the bill to MAPPED and clears the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(flaggedBill("bill-1"), nil)
		bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusMapped, entities.ActionToReview, "").Return(nil)

		bill, err := uc.Reset(ctx, "bill-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.Status != entities.BillStatusMapped || bill.LastError != "" {
			t.Fatalf("unexpected bill state: %+v", bill)
		}
	})

	t.Run("denied bills may be reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		denied := flaggedBill("bill-1")
		denied.Status = entities.BillStatusDenied
		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(denied, nil)
		bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusMapped, entities.ActionToReview, "").Return(nil)

		if _, err := uc.Reset(ctx, "bill-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("completed bills are refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		done := flaggedBill("bill-1")
		done.Status = entities.BillStatusCompleted
		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(done, nil)

		if _, err := uc.Reset(ctx, "bill-1"); !errors.Is(err, ErrResetNotAllowed) {
			t.Fatalf("expected ErrResetNotAllowed, got %v", err)
		}
	})

	t.Run("missing bill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		bills.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Bill{}, nil)

		if _, err := uc.Reset(ctx, "missing"); !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})
}

func TestReviewUseCase_OverrideLine(t *testing.T) {
	ctx := context.Background()
	lines := []entities.BillLineItem{
		{ID: "line-1", BillID: "bill-1", CPTCode: "73221", Units: 1, ChargeAmount: 500, Decision: entities.DecisionDenied, ReasonCode: "no_rate_found"},
		{ID: "line-2", BillID: "bill-1", CPTCode: "99213", Units: 1, ChargeAmount: 120, Decision: entities.DecisionPending},
	}

	t.Run("approves a denied line with a reviewer amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		amount := 450.0
		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(flaggedBill("bill-1"), nil)
		bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(lines, nil)
		bills.EXPECT().UpdateLineDecision(gomock.Any(), "line-1", entities.DecisionApproved, &amount, "").Return(nil)

		line, err := uc.OverrideLine(ctx, "bill-1", "line-1", entities.DecisionApproved, &amount, "ignored")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.Decision != entities.DecisionApproved || line.AllowedAmount == nil || *line.AllowedAmount != 450 {
			t.Fatalf("unexpected line state: %+v", line)
		}
		if line.ReasonCode != "" {
			t.Fatalf("reason should be cleared on approval, got %q", line.ReasonCode)
		}
	})

	t.Run("denial requires a reason and drops the amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		amount := 450.0
		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(flaggedBill("bill-1"), nil).Times(2)

		if _, err := uc.OverrideLine(ctx, "bill-1", "line-2", entities.DecisionDenied, nil, "  "); !errors.Is(err, ErrDenialReasonRequired) {
			t.Fatalf("expected ErrDenialReasonRequired, got %v", err)
		}

		bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(lines, nil)
		bills.EXPECT().UpdateLineDecision(gomock.Any(), "line-2", entities.DecisionDenied, nil, "not_medically_necessary").Return(nil)

		line, err := uc.OverrideLine(ctx, "bill-1", "line-2", entities.DecisionDenied, &amount, "not_medically_necessary")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.AllowedAmount != nil || line.ReasonCode != "not_medically_necessary" {
			t.Fatalf("unexpected line state: %+v", line)
		}
	})

	t.Run("approval without an amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(flaggedBill("bill-1"), nil)

		if _, err := uc.OverrideLine(ctx, "bill-1", "line-1", entities.DecisionApproved, nil, ""); !errors.Is(err, ErrAmountRequired) {
			t.Fatalf("expected ErrAmountRequired, got %v", err)
		}
	})

	t.Run("unknown decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(flaggedBill("bill-1"), nil)

		if _, err := uc.OverrideLine(ctx, "bill-1", "line-1", entities.LineDecision("maybe"), nil, ""); !errors.Is(err, ErrInvalidLineDecision) {
			t.Fatalf("expected ErrInvalidLineDecision, got %v", err)
		}
	})

	t.Run("line must belong to the bill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		amount := 100.0
		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(flaggedBill("bill-1"), nil)
		bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(lines, nil)

		if _, err := uc.OverrideLine(ctx, "bill-1", "line-9", entities.DecisionApproved, &amount, ""); !errors.Is(err, ErrLineNotFound) {
			t.Fatalf("expected ErrLineNotFound, got %v", err)
		}
	})

	t.Run("terminal bills are immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewReviewUseCase(bills)

		amount := 100.0
		done := flaggedBill("bill-1")
		done.Status = entities.BillStatusCompleted
		bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(done, nil)

		if _, err := uc.OverrideLine(ctx, "bill-1", "line-1", entities.DecisionApproved, &amount, ""); !errors.Is(err, ErrBillTerminal) {
			t.Fatalf("expected ErrBillTerminal, got %v", err)
		}
	})
}
