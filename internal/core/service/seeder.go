package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

// Validator checks a struct against its validation tags.
type Validator interface {
	Validate(i any) error
}

// SeedResult reports what a Seed call wrote.
type SeedResult struct {
	UsersCreated    int
	UsersSkipped    int
	ProductsCreated int
	ProductsSkipped int
}

// Seeder loads users and products into the stores. It is the only write path
// in the system and runs outside the request flow.
type Seeder struct {
	users     ports.UserRepository
	products  ports.ProductRepository
	validator Validator
	logger    zerolog.Logger
}

func NewSeeder(users ports.UserRepository, products ports.ProductRepository, validator Validator, logger zerolog.Logger) *Seeder {
	return &Seeder{users: users, products: products, validator: validator, logger: logger}
}

// Seed validates the whole fixture before writing anything, then creates
// users followed by products in fixture order. Users that already exist are
// skipped, and products are only inserted into an empty catalogue, so the
// fixture can be applied more than once.
func (s *Seeder) Seed(ctx context.Context, fx ports.Fixture) (SeedResult, error) {
	var res SeedResult

	if err := s.validator.Validate(&fx); err != nil {
		return res, fmt.Errorf("seed: invalid fixture: %w", err)
	}

	for _, in := range fx.Users {
		u, err := s.users.Create(ctx, in)
		if err != nil {
			if errors.Is(err, domain.ErrUserExists) {
				s.logger.Info().Str("username", in.Username).Msg("user already exists, skipping")
				res.UsersSkipped++
				continue
			}
			return res, fmt.Errorf("seed: create user %q: %w", in.Username, err)
		}
		s.logger.Info().Int64("id", u.ID).Str("username", u.Username).Str("role", string(u.Role)).Msg("user created")
		res.UsersCreated++
	}

	existing, err := s.products.List(ctx)
	if err != nil {
		return res, fmt.Errorf("seed: list products: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info().Int("existing", len(existing)).Msg("catalogue already populated, skipping products")
		res.ProductsSkipped = len(fx.Products)
		return res, nil
	}

	for _, in := range fx.Products {
		p, err := s.products.Create(ctx, in)
		if err != nil {
			return res, fmt.Errorf("seed: create product %q: %w", in.Name, err)
		}
		s.logger.Info().Int64("id", p.ID).Str("name", p.Name).Msg("product created")
		res.ProductsCreated++
	}

	return res, nil
}
