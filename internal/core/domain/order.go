package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusNew:     {StatusPending, StatusPaid, StatusCancelled},
	StatusPending: {StatusPaid, StatusShipped, StatusCancelled},
	StatusPaid:    {StatusShipped, StatusCancelled},
	StatusShipped: {StatusDelivered},
}

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrSKUExists          = errors.New("sku already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrInvalidLimit       = errors.New("page limit out of range")
	ErrForbidden          = errors.New("access forbidden")
)

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a single product line on an order.
type OrderItem struct {
	ProductID int64 `json:"product_id" bson:"product_id"`
	Quantity  int   `json:"quantity" bson:"quantity"`
}

// Order is the core aggregate. It references its customer by id only;
// anything that needs the customer record fetches it explicitly.
type Order struct {
	ID         int64       `json:"id" bson:"_id"`
	CustomerID int64       `json:"customer_id" bson:"customer_id"`
	Status     OrderStatus `json:"status" bson:"status"`
	CreatedAt  time.Time   `json:"created_at" bson:"created_at"`
	Items      []OrderItem `json:"items" bson:"items"`
}

// PendingOrder is the projection used by the merge scan: an open order
// together with the coordinate of its customer.
type PendingOrder struct {
	OrderID   int64      `bson:"_id"`
	Location  Coordinate `bson:"location"`
	CreatedAt time.Time  `bson:"created_at"`
}

// StatusEvent records one externally reported status change on an order.
type StatusEvent struct {
	OrderID   int64
	Status    OrderStatus
	Timestamp time.Time
	Source    string
	Location  *Coordinate // optional
}
