package interfaces

import (
	"context"

	"billreview/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order and
// OrderLineItem. Orders are read-only to the engine except the
// reviewed-by-bill marker.

type IOrderRepository interface {
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	ListLineItems(ctx context.Context, orderID string) ([]entities.OrderLineItem, error)
	MarkLineItemsReviewed(ctx context.Context, orderID, billID string, cptCodes []string) error
}
