package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/orderhub/order-api/internal/core/domain"
	"github.com/orderhub/order-api/internal/core/ports"
	"github.com/orderhub/order-api/internal/pkg/pagination"
)

// CustomerService implements customer CRUD and cursor-paginated listing.
type CustomerService struct {
	repo   ports.CustomerRepository
	page   PageParams
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, page PageParams, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, page: page, logger: logger}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, input ports.CustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		FullName: input.FullName,
		Email:    input.Email,
		Location: domain.Coordinate{Lat: input.Lat, Lng: input.Lng},
	}
	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("customer_id", created.ID).Msg("customer created")
	return created, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context, input ports.ListInput) (*ports.CustomerPage, error) {
	limit, ok := pagination.ClampLimit(input.Limit, s.page.DefaultLimit, s.page.MaxLimit)
	if !ok {
		return nil, domain.ErrInvalidLimit
	}
	rows, err := s.repo.ListAfter(ctx, pagination.After(input.Cursor), limit+1)
	if err != nil {
		return nil, err
	}
	items, next := pagination.Paginate(rows, limit, func(c *domain.Customer) int64 { return c.ID })
	return &ports.CustomerPage{Items: items, NextCursor: next}, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, input ports.CustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.FullName = input.FullName
	customer.Email = input.Email
	customer.Location = domain.Coordinate{Lat: input.Lat, Lng: input.Lng}
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
