package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/orderhub/order-api/internal/core/domain"
	"github.com/orderhub/order-api/internal/core/ports"
	"github.com/orderhub/order-api/internal/pkg/pagination"
)

// ProductService implements product CRUD and cursor-paginated listing.
type ProductService struct {
	repo   ports.ProductRepository
	page   PageParams
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, page PageParams, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, page: page, logger: logger}
}

func (s *ProductService) CreateProduct(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:  input.Name,
		SKU:   input.SKU,
		Price: input.Price,
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("product_id", created.ID).Str("sku", created.SKU).Msg("product created")
	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context, input ports.ListInput) (*ports.ProductPage, error) {
	limit, ok := pagination.ClampLimit(input.Limit, s.page.DefaultLimit, s.page.MaxLimit)
	if !ok {
		return nil, domain.ErrInvalidLimit
	}
	rows, err := s.repo.ListAfter(ctx, pagination.After(input.Cursor), limit+1)
	if err != nil {
		return nil, err
	}
	items, next := pagination.Paginate(rows, limit, func(p *domain.Product) int64 { return p.ID })
	return &ports.ProductPage{Items: items, NextCursor: next}, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, input ports.ProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = input.Name
	product.SKU = input.SKU
	product.Price = input.Price
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
