package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  []*domain.User
	nextID int64
	err    error // if set, every call returns this error

	byIDCalls       int
	byUsernameCalls int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.byIDCalls++
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.byUsernameCalls++
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == in.Username || u.Email == in.Email {
			return nil, domain.ErrUserExists
		}
	}
	u := &domain.User{
		ID:        r.nextID,
		Username:  in.Username,
		Email:     in.Email,
		Role:      domain.Role(in.Role),
		CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC).Add(time.Duration(r.nextID) * time.Hour),
	}
	r.nextID++
	r.users = append(r.users, u)
	return cloneUser(u), nil
}

func (r *stubUserRepo) calls() int {
	return r.byIDCalls + r.byUsernameCalls
}

type stubProductRepo struct {
	products  []domain.Product
	nextID    int64
	listErr   error
	createErr error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{nextID: 1}
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if len(r.products) == 0 {
		return nil, nil
	}
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *stubProductRepo) Create(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	p := domain.Product{
		ID:            r.nextID,
		Name:          in.Name,
		Category:      in.Category,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Stock:         in.Stock,
		CreatedAt:     time.Now().UTC(),
	}
	r.nextID++
	r.products = append(r.products, p)
	return &p, nil
}
