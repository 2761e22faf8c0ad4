package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderhub/order-api/internal/api/metrics"
	"github.com/orderhub/order-api/internal/core/domain"
	"github.com/orderhub/order-api/internal/core/ports"
	"github.com/orderhub/order-api/internal/pkg/pagination"
)

// PageParams bound cursor-paginated listings.
type PageParams struct {
	DefaultLimit int
	MaxLimit     int
}

// OrderService implements order CRUD and cursor-paginated listing.
type OrderService struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
	products  ports.ProductRepository
	eta       ports.ETAService
	page      PageParams
	logger    zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	customers ports.CustomerRepository,
	products ports.ProductRepository,
	eta ports.ETAService,
	page PageParams,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		products:  products,
		eta:       eta,
		page:      page,
		logger:    logger,
	}
}

// CreateOrder validates the referenced customer and products, then persists
// a new order in status "new".
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	if _, err := s.customers.FindByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		if _, err := s.products.FindByID(ctx, it.ProductID); err != nil {
			return nil, err
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, domain.OrderItem{ProductID: it.ProductID, Quantity: qty})
	}

	order := &domain.Order{
		CustomerID: input.CustomerID,
		Status:     domain.StatusNew,
		CreatedAt:  time.Now().UTC(),
		Items:      items,
	}
	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info().Int64("order_id", created.ID).Int64("customer_id", created.CustomerID).Msg("order created")
	return created, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// ListOrders returns one page of orders in ascending id order. The cursor is
// opaque; an undecodable cursor is treated as absent rather than an error,
// so pagination never hard-fails on a corrupted token. An out-of-range limit
// is a caller error.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListInput) (*ports.OrderPage, error) {
	limit, ok := pagination.ClampLimit(input.Limit, s.page.DefaultLimit, s.page.MaxLimit)
	if !ok {
		return nil, domain.ErrInvalidLimit
	}

	rows, err := s.orders.ListAfter(ctx, pagination.After(input.Cursor), limit+1)
	if err != nil {
		return nil, err
	}
	items, next := pagination.Paginate(rows, limit, func(o *domain.Order) int64 { return o.ID })
	return &ports.OrderPage{Items: items, NextCursor: next}, nil
}

// ReplaceOrder fully replaces the order's status and items.
func (s *OrderService) ReplaceOrder(ctx context.Context, id int64, input ports.ReplaceOrderInput) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := domain.OrderStatus(input.Status)
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		if _, err := s.products.FindByID(ctx, it.ProductID); err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order.Status = status
	order.Items = items
	if err := s.orders.Replace(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus applies a status change, enforcing the state machine.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !next.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}
	if err := s.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	order.Status = next

	s.logger.Info().Int64("order_id", id).Str("status", string(next)).Msg("order status updated")
	return order, nil
}

// CancelOrder sets the order's status to "cancelled".
func (s *OrderService) CancelOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.UpdateOrderStatus(ctx, id, string(domain.StatusCancelled))
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return err
	}
	return s.orders.Delete(ctx, id)
}

// UpdateOrderAddress moves the order's customer to a new coordinate and
// returns the recalculated delivery estimate.
func (s *OrderService) UpdateOrderAddress(ctx context.Context, id int64, location domain.Coordinate) (*ports.ETAResult, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.FindByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}
	customer.Location = location
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return s.eta.EstimateOrder(ctx, id)
}
