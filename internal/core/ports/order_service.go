package ports

import (
	"context"

	"github.com/orderhub/order-api/internal/core/domain"
)

// OrderItemInput is one product line on an order request.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

// CreateOrderInput carries all data needed to create a new order.
type CreateOrderInput struct {
	CustomerID int64
	Items      []OrderItemInput
}

// ReplaceOrderInput fully replaces an order's status and items.
type ReplaceOrderInput struct {
	Status string
	Items  []OrderItemInput
}

// ListInput is the common cursor-pagination request: a page size and an
// optional opaque cursor from the previous page.
type ListInput struct {
	Limit  int
	Cursor string
}

// OrderPage is one page of orders plus the continuation token (nil at the
// end of the collection).
type OrderPage struct {
	Items      []*domain.Order
	NextCursor *string
}

// ETAResult is the derived delivery estimate for a single order. It is
// computed on demand and never persisted.
type ETAResult struct {
	OrderID            int64
	DistanceKm         float64
	EtaMinutes         float64
	CO2Grams           float64
	SuggestedMergeWith *int64 // nil when no mergeable pending order exists
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, input ListInput) (*OrderPage, error)
	ReplaceOrder(ctx context.Context, id int64, input ReplaceOrderInput) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	CancelOrder(ctx context.Context, id int64) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	// UpdateOrderAddress moves the order's customer to a new coordinate and
	// returns the recalculated delivery estimate.
	UpdateOrderAddress(ctx context.Context, id int64, location domain.Coordinate) (*ETAResult, error)
}

// ETAService computes delivery estimates.
type ETAService interface {
	EstimateOrder(ctx context.Context, orderID int64) (*ETAResult, error)
}
