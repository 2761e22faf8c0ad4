package ports

import (
	"context"
	"time"

	"github.com/orderhub/order-api/internal/core/domain"
)

// LocationInput carries optional geographic coordinates for a status event.
type LocationInput struct {
	Lat float64
	Lng float64
}

// StatusEventInput is the DTO passed from the transport layer to EventService.
type StatusEventInput struct {
	OrderID   int64
	Status    string
	Timestamp time.Time
	Source    string
	Location  *LocationInput // optional
}

// EventService processes incoming order status events.
type EventService interface {
	Process(ctx context.Context, event StatusEventInput) error
}

// EventRepository handles event persistence and atomic order status updates.
type EventRepository interface {
	// UpdateOrderStatus atomically sets the order's new status.
	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
	// InsertEvent persists an event to the order_events audit collection.
	InsertEvent(ctx context.Context, event *domain.StatusEvent) error
}
