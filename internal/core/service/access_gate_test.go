package service

import (
	"testing"
	"time"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
)

func TestAccessGate_Authorize(t *testing.T) {
	gate := NewAccessGate(discardLogger)
	now := time.Now().UTC()

	cases := []struct {
		name     string
		user     *domain.User
		required domain.Role
		want     bool
	}{
		{"admin requires admin", &domain.User{ID: 1, Role: domain.RoleAdmin, CreatedAt: now}, domain.RoleAdmin, true},
		{"user requires admin", &domain.User{ID: 2, Role: domain.RoleUser, CreatedAt: now}, domain.RoleAdmin, false},
		{"upper-case role", &domain.User{ID: 3, Role: "ADMIN", CreatedAt: now}, domain.RoleAdmin, false},
		{"title-case role", &domain.User{ID: 4, Role: "Admin", CreatedAt: now}, domain.RoleAdmin, false},
		{"empty role", &domain.User{ID: 5}, domain.RoleAdmin, false},
		{"user requires user", &domain.User{ID: 6, Role: domain.RoleUser}, domain.RoleUser, true},
		{"absent user, admin", nil, domain.RoleAdmin, false},
		{"absent user, user", nil, domain.RoleUser, false},
	}

	for _, tc := range cases {
		if got := gate.Authorize(tc.user, tc.required); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
