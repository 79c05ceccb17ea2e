package ports

import (
	"context"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
)

// TokenResolver maps a bearer token to the user it identifies. A nil user
// with a nil error means the token identifies nobody.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// AccessGate decides whether a user holds the role an operation requires.
type AccessGate interface {
	Authorize(user *domain.User, required domain.Role) bool
}

// ProductService exposes read-only catalogue queries.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	Summarize(ctx context.Context) (domain.InventorySummary, error)
}
