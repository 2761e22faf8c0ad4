package ports

import (
	"context"

	"github.com/orderhub/order-api/internal/core/domain"
)

// CustomerInput carries the writable fields of a customer.
type CustomerInput struct {
	FullName string
	Email    string
	Lat      float64
	Lng      float64
}

// CustomerPage is one page of customers plus the continuation token.
type CustomerPage struct {
	Items      []*domain.Customer
	NextCursor *string
}

// CustomerService defines use-case operations for customers.
type CustomerService interface {
	CreateCustomer(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context, input ListInput) (*CustomerPage, error)
	UpdateCustomer(ctx context.Context, id int64, input CustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name  string
	SKU   string
	Price float64
}

// ProductPage is one page of products plus the continuation token.
type ProductPage struct {
	Items      []*domain.Product
	NextCursor *string
}

// ProductService defines use-case operations for products.
type ProductService interface {
	CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, input ListInput) (*ProductPage, error)
	UpdateProduct(ctx context.Context, id int64, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
