package ports

import (
	"context"

	"github.com/orderhub/order-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Ids are assigned
// by the repository and are unique and strictly increasing, which is what the
// cursor pagination scheme relies on.
type OrderRepository interface {
	// Create persists the order and returns it with its assigned id.
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	// ListAfter returns up to limit orders with id > afterID, ascending by id.
	ListAfter(ctx context.Context, afterID int64, limit int) ([]*domain.Order, error)
	// ListPending returns every order with status "pending" except excludeID,
	// joined with its customer coordinate, ordered ascending by
	// (created_at, id). The ordering must be deterministic: the merge scan
	// picks the first candidate within radius, not the closest.
	ListPending(ctx context.Context, excludeID int64) ([]domain.PendingOrder, error)
	// Replace overwrites the order's status and items.
	Replace(ctx context.Context, o *domain.Order) error
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	Delete(ctx context.Context, id int64) error
}

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	ListAfter(ctx context.Context, afterID int64, limit int) ([]*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	ListAfter(ctx context.Context, afterID int64, limit int) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
}
