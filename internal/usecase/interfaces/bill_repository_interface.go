package interfaces

import (
	"context"

	"billreview/internal/domain/entities"
)

// IBillRepository abstracts DynamoDB persistence for Bill and BillLineItem.

type IBillRepository interface {
	Create(ctx context.Context, b entities.Bill, items []entities.BillLineItem) (entities.Bill, error)
	GetByID(ctx context.Context, id string) (entities.Bill, error)
	ListByStatus(ctx context.Context, status entities.BillStatus, limit int) ([]entities.Bill, error)
	UpdateDisposition(ctx context.Context, id string, status entities.BillStatus, action entities.BillAction, lastError string) error
	MarkPaid(ctx context.Context, id string) error

	ListLineItems(ctx context.Context, billID string) ([]entities.BillLineItem, error)
	UpdateLineDecision(ctx context.Context, lineID string, decision entities.LineDecision, allowedAmount *float64, reasonCode string) error
}
