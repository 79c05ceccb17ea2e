package ports

import (
	"context"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// List returns every product in creation order.
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
}
