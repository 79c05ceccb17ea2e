package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// ListProducts returns the whole catalogue in creation order. An empty store
// yields an empty, non-nil slice.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	s.logger.Debug().Int("count", len(products)).Msg("products listed")
	return products, nil
}

// Summarize computes stock and profit figures over the whole catalogue.
func (s *ProductService) Summarize(ctx context.Context) (domain.InventorySummary, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return domain.InventorySummary{}, err
	}
	return domain.Summarize(products), nil
}
