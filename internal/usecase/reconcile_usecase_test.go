package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"billreview/internal/domain/entities"
	mock_interfaces "billreview/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reconcileMocks struct {
	bills     *mock_interfaces.MockIBillRepository
	orders    *mock_interfaces.MockIOrderRepository
	taxonomy  *mock_interfaces.MockIProcedureTaxonomy
	rates     *mock_interfaces.MockIRateSource
	ancillary *mock_interfaces.MockIAncillaryCodes
}

func newReconcileUseCase(ctrl *gomock.Controller) (*ReconcileUseCase, reconcileMocks) {
	m := reconcileMocks{
		bills:     mock_interfaces.NewMockIBillRepository(ctrl),
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		taxonomy:  mock_interfaces.NewMockIProcedureTaxonomy(ctrl),
		rates:     mock_interfaces.NewMockIRateSource(ctrl),
		ancillary: mock_interfaces.NewMockIAncillaryCodes(ctrl),
	}
	uc := NewReconcileUseCase(m.bills, m.orders, m.taxonomy, NewRateResolver(m.rates), m.ancillary)
	return uc, m
}

func mappedBill() entities.Bill {
	return entities.Bill{
		ID:           "bill-1",
		OrderID:      "ORD1",
		PatientName:  "Jane Roe",
		ProviderName: "Imaging Partners LLC",
		ProviderAddr: entities.Address{
			Line1:      "100 Main St",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62704",
		},
		ProviderTIN:  "12-3456789",
		Network:      "In Network",
		Status:       entities.BillStatusMapped,
		Action:       entities.ActionToReview,
	}
}

func TestReconcileUseCase_ReconcileBill(t *testing.T) {
	ctx := context.Background()

	t.Run("bill not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		m.bills.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Bill{}, nil)

		_, err := uc.ReconcileBill(ctx, "missing")
		if !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("bill not mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		bill := mappedBill()
		bill.Status = entities.BillStatusReviewed
		m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(bill, nil)

		_, err := uc.ReconcileBill(ctx, "bill-1")
		if !errors.Is(err, ErrBillNotMapped) {
			t.Fatalf("expected ErrBillNotMapped, got %v", err)
		}
	})

	t.Run("missing order holds bill in MAPPED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		bill := mappedBill()
		bill.OrderID = ""
		m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(bill, nil)
		m.bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusMapped, bill.Action, "No associated order found").Return(nil)

		res, err := uc.ReconcileBill(ctx, "bill-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BillStatusMapped {
			t.Fatalf("expected bill held in MAPPED, got %s", res.Status)
		}
	})

	t.Run("provider gate fires before comparison", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		bill := mappedBill()
		bill.ProviderTIN = ""
		bill.Network = ""
		m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(bill, nil)
		m.bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(billLines("73221"), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "ORD1").Return(entities.Order{OrderID: "ORD1"}, nil)
		m.orders.EXPECT().ListLineItems(gomock.Any(), "ORD1").Return(orderLines("73221"), nil)
		m.bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusReviewFlag, entities.ActionUpdateProvInfo, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.BillStatus, _ entities.BillAction, msg string) error {
				if !strings.Contains(msg, "TIN") || !strings.Contains(msg, "Provider Network") {
					t.Fatalf("expected missing fields in message, got %q", msg)
				}
				return nil
			},
		)

		res, err := uc.ReconcileBill(ctx, "bill-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Input != entities.InputProviderIncomplete {
			t.Fatalf("expected provider_incomplete, got %s", res.Input)
		}
	})

	t.Run("arthrogram order routed out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(mappedBill(), nil)
		m.bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(billLines("20610"), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "ORD1").Return(entities.Order{OrderID: "ORD1", BundleType: "Arthrogram"}, nil)
		m.orders.EXPECT().ListLineItems(gomock.Any(), "ORD1").Return(orderLines("20610"), nil)
		m.bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusArthrogram, entities.ActionToReview, gomock.Any()).Return(nil)

		res, err := uc.ReconcileBill(ctx, "bill-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BillStatusArthrogram {
			t.Fatalf("expected ARTHROGRAM, got %s", res.Status)
		}
	})

	t.Run("arthrogram cpt on order routes even without bundle type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(mappedBill(), nil)
		m.bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(billLines("77002"), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "ORD1").Return(entities.Order{OrderID: "ORD1"}, nil)
		m.orders.EXPECT().ListLineItems(gomock.Any(), "ORD1").Return(orderLines("77002"), nil)
		m.bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusArthrogram, entities.ActionToReview, gomock.Any()).Return(nil)

		res, err := uc.ReconcileBill(ctx, "bill-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BillStatusArthrogram {
			t.Fatalf("expected ARTHROGRAM, got %s", res.Status)
		}
	})

	t.Run("full match resolves rates and accepts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		items := []entities.BillLineItem{{ID: "li-1", BillID: "bill-1", CPTCode: "73221", Units: 1, ChargeAmount: 900}}
		rate := 450.0

		m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(mappedBill(), nil)
		m.bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(items, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "ORD1").Return(entities.Order{OrderID: "ORD1", LegacyRecordID: "L100"}, nil)
		m.orders.EXPECT().ListLineItems(gomock.Any(), "ORD1").Return(orderLines("73221"), nil)
		m.ancillary.EXPECT().AncillarySet(gomock.Any()).Return(map[string]struct{}{}, nil)
		m.taxonomy.EXPECT().Categories(gomock.Any(), []string{"73221"}).Return(map[string]entities.ProcedureCategory{}, nil)
		// TIN is cleaned before lookup.
		m.rates.EXPECT().InNetworkRate(gomock.Any(), "123456789", "73221", "").Return(&rate, nil)
		m.bills.EXPECT().UpdateLineDecision(gomock.Any(), "li-1", entities.DecisionApproved, &rate, "").Return(nil)
		m.orders.EXPECT().MarkLineItemsReviewed(gomock.Any(), "ORD1", "bill-1", []string{"73221"}).Return(nil)
		m.bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusReviewed, entities.ActionApplyRate, "").Return(nil)

		res, err := uc.ReconcileBill(ctx, "bill-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BillStatusReviewed || res.Input != entities.InputFullMatch {
			t.Fatalf("unexpected result: %+v", res)
		}
		if len(res.LineRates) != 1 || !res.LineRates[0].Resolved() {
			t.Fatalf("expected resolved line rate: %+v", res.LineRates)
		}
	})

	t.Run("subset match marks order lines reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		items := []entities.BillLineItem{{ID: "li-1", BillID: "bill-1", CPTCode: "73221", Units: 1}}
		rate := 450.0

		m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(mappedBill(), nil)
		m.bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(items, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "ORD1").Return(entities.Order{OrderID: "ORD1"}, nil)
		m.orders.EXPECT().ListLineItems(gomock.Any(), "ORD1").Return(orderLines("73221", "99213"), nil)
		m.ancillary.EXPECT().AncillarySet(gomock.Any()).Return(map[string]struct{}{}, nil)
		m.taxonomy.EXPECT().Categories(gomock.Any(), []string{"73221", "99213"}).Return(map[string]entities.ProcedureCategory{}, nil)
		m.rates.EXPECT().InNetworkRate(gomock.Any(), "123456789", "73221", "").Return(&rate, nil)
		m.bills.EXPECT().UpdateLineDecision(gomock.Any(), "li-1", entities.DecisionApproved, &rate, "").Return(nil)
		m.orders.EXPECT().MarkLineItemsReviewed(gomock.Any(), "ORD1", "bill-1", []string{"73221"}).Return(nil)
		m.bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusReviewed, entities.ActionApplyRate, "").Return(nil)

		res, err := uc.ReconcileBill(ctx, "bill-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Input != entities.InputBilledSubset {
			t.Fatalf("expected billed_subset, got %s", res.Input)
		}
	})

	t.Run("billed excess flags without touching rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(mappedBill(), nil)
		m.bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(billLines("73221", "99213"), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "ORD1").Return(entities.Order{OrderID: "ORD1"}, nil)
		m.orders.EXPECT().ListLineItems(gomock.Any(), "ORD1").Return(orderLines("73221"), nil)
		m.ancillary.EXPECT().AncillarySet(gomock.Any()).Return(map[string]struct{}{}, nil)
		m.taxonomy.EXPECT().Categories(gomock.Any(), []string{"73221", "99213"}).Return(map[string]entities.ProcedureCategory{}, nil)
		m.bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusReviewFlag, entities.ActionAddressMismatch, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.BillStatus, _ entities.BillAction, msg string) error {
				if !strings.Contains(msg, "99213") {
					t.Fatalf("expected offending code in message, got %q", msg)
				}
				return nil
			},
		)

		res, err := uc.ReconcileBill(ctx, "bill-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Input != entities.InputBilledExcess {
			t.Fatalf("expected billed_excess, got %s", res.Input)
		}
	})

	t.Run("rate failure flags with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		items := []entities.BillLineItem{{ID: "li-1", BillID: "bill-1", CPTCode: "73221", Units: 1}}

		m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(mappedBill(), nil)
		m.bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(items, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "ORD1").Return(entities.Order{OrderID: "ORD1"}, nil)
		m.orders.EXPECT().ListLineItems(gomock.Any(), "ORD1").Return(orderLines("73221"), nil)
		m.ancillary.EXPECT().AncillarySet(gomock.Any()).Return(map[string]struct{}{}, nil)
		m.taxonomy.EXPECT().Categories(gomock.Any(), []string{"73221"}).Return(map[string]entities.ProcedureCategory{}, nil)
		m.rates.EXPECT().InNetworkRate(gomock.Any(), "123456789", "73221", "").Return(nil, nil)
		m.bills.EXPECT().UpdateLineDecision(gomock.Any(), "li-1", entities.DecisionDenied, nil, ReasonNoRateFound).Return(nil)
		m.bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusReviewFlag, entities.ActionReviewRates, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.BillStatus, _ entities.BillAction, msg string) error {
				if !strings.Contains(msg, ReasonNoRateFound) {
					t.Fatalf("expected reason code in message, got %q", msg)
				}
				return nil
			},
		)

		res, err := uc.ReconcileBill(ctx, "bill-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Input != entities.InputRateFailure {
			t.Fatalf("expected rate_failure, got %s", res.Input)
		}
	})

	t.Run("unit violations appended without overriding status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newReconcileUseCase(ctrl)

		items := []entities.BillLineItem{{ID: "li-1", BillID: "bill-1", CPTCode: "73221", Units: 2}}
		rate := 450.0

		m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(mappedBill(), nil)
		m.bills.EXPECT().ListLineItems(gomock.Any(), "bill-1").Return(items, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "ORD1").Return(entities.Order{OrderID: "ORD1"}, nil)
		m.orders.EXPECT().ListLineItems(gomock.Any(), "ORD1").Return(orderLines("73221"), nil)
		m.ancillary.EXPECT().AncillarySet(gomock.Any()).Return(map[string]struct{}{}, nil)
		m.taxonomy.EXPECT().Categories(gomock.Any(), []string{"73221"}).Return(map[string]entities.ProcedureCategory{}, nil)
		m.rates.EXPECT().InNetworkRate(gomock.Any(), "123456789", "73221", "").Return(&rate, nil)
		m.bills.EXPECT().UpdateLineDecision(gomock.Any(), "li-1", entities.DecisionApproved, &rate, "").Return(nil)
		m.orders.EXPECT().MarkLineItemsReviewed(gomock.Any(), "ORD1", "bill-1", []string{"73221"}).Return(nil)
		m.bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusReviewed, entities.ActionApplyRate, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.BillStatus, _ entities.BillAction, msg string) error {
				if !strings.Contains(msg, "Units review needed") || !strings.Contains(msg, "73221 has 2 units") {
					t.Fatalf("expected unit violation note, got %q", msg)
				}
				return nil
			},
		)

		res, err := uc.ReconcileBill(ctx, "bill-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BillStatusReviewed {
			t.Fatalf("unit violation must not change status, got %s", res.Status)
		}
		if len(res.UnitViolations) != 1 {
			t.Fatalf("expected unit violation recorded: %+v", res.UnitViolations)
		}
	})
}

func TestReconcileUseCase_RunBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newReconcileUseCase(ctrl)

	bills := []entities.Bill{mappedBill()}
	bills[0].OrderID = ""

	m.bills.EXPECT().ListByStatus(gomock.Any(), entities.BillStatusMapped, 0).Return(bills, nil)
	m.bills.EXPECT().GetByID(gomock.Any(), "bill-1").Return(bills[0], nil)
	m.bills.EXPECT().UpdateDisposition(gomock.Any(), "bill-1", entities.BillStatusMapped, bills[0].Action, "No associated order found").Return(nil)

	summary, err := uc.RunBatch(context.Background(), 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Total != 1 || summary.Held != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
