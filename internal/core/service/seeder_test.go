package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
	"github.com/clinicadmin/inventory-api/internal/pkg/validation"
)

func clinicFixture() ports.Fixture {
	return ports.Fixture{
		Users: []ports.CreateUserInput{
			{Username: "admin", Email: "admin@clinic.com", Role: "admin"},
			{Username: "testuser", Email: "test@example.com", Role: "user"},
		},
		Products: []ports.CreateProductInput{
			{Name: "Digital Thermometer", Category: "Medical Equipment", PurchasePrice: 25, SellingPrice: 35, Stock: 50},
			{Name: "Surgical Gloves (Box of 100)", Category: "Consumables", PurchasePrice: 15, SellingPrice: 22, Stock: 0},
		},
	}
}

func TestSeeder_Seed_Success(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	s := NewSeeder(users, products, validation.New(), discardLogger)

	res, err := s.Seed(context.Background(), clinicFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UsersCreated != 2 || res.UsersSkipped != 0 || res.ProductsCreated != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if users.users[0].Role != domain.RoleAdmin || users.users[1].Role != domain.RoleUser {
		t.Errorf("roles not stored as given: %+v %+v", users.users[0], users.users[1])
	}
	if products.products[0].Name != "Digital Thermometer" {
		t.Errorf("products not created in fixture order")
	}
}

func TestSeeder_Seed_SkipsExistingUsers(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	s := NewSeeder(users, products, validation.New(), discardLogger)

	if _, err := s.Seed(context.Background(), ports.Fixture{Users: clinicFixture().Users}); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	res, err := s.Seed(context.Background(), ports.Fixture{Users: clinicFixture().Users})
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if res.UsersCreated != 0 || res.UsersSkipped != 2 {
		t.Fatalf("expected both users skipped, got %+v", res)
	}
	if len(users.users) != 2 {
		t.Errorf("expected 2 stored users, got %d", len(users.users))
	}
}

func TestSeeder_Seed_ValidationRejectsBeforeWriting(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.Fixture)
		want   string
	}{
		{"zero purchase price", func(f *ports.Fixture) { f.Products[1].PurchasePrice = 0 }, "products[1].purchase_price"},
		{"negative selling price", func(f *ports.Fixture) { f.Products[0].SellingPrice = -1 }, "products[0].selling_price"},
		{"negative stock", func(f *ports.Fixture) { f.Products[0].Stock = -5 }, "products[0].stock"},
		{"upper-case role", func(f *ports.Fixture) { f.Users[0].Role = "ADMIN" }, "users[0].role"},
		{"bad email", func(f *ports.Fixture) { f.Users[1].Email = "nope" }, "users[1].email"},
		{"missing name", func(f *ports.Fixture) { f.Products[0].Name = "" }, "products[0].name"},
	}

	for _, tc := range cases {
		users := newStubUserRepo()
		products := newStubProductRepo()
		s := NewSeeder(users, products, validation.New(), discardLogger)

		fx := clinicFixture()
		tc.mutate(&fx)

		_, err := s.Seed(context.Background(), fx)
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: expected %q in error, got %v", tc.name, tc.want, err)
		}
		if len(users.users) != 0 || len(products.products) != 0 {
			t.Errorf("%s: nothing should be written on invalid fixture", tc.name)
		}
	}
}

func TestSeeder_Seed_StoreError(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	products.createErr = errors.New("disk full")
	s := NewSeeder(users, products, validation.New(), discardLogger)

	res, err := s.Seed(context.Background(), clinicFixture())
	if !errors.Is(err, products.createErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if res.UsersCreated != 2 || res.ProductsCreated != 0 {
		t.Errorf("unexpected partial result: %+v", res)
	}
}

func TestSeeder_Seed_RerunDoesNotDuplicateProducts(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	s := NewSeeder(users, products, validation.New(), discardLogger)

	if _, err := s.Seed(context.Background(), clinicFixture()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	res, err := s.Seed(context.Background(), clinicFixture())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if res.ProductsCreated != 0 || res.ProductsSkipped != 2 {
		t.Fatalf("expected products skipped on rerun, got %+v", res)
	}
	if len(products.products) != 2 {
		t.Errorf("expected 2 stored products, got %d", len(products.products))
	}
}

func TestSeeder_Seed_ListError(t *testing.T) {
	products := newStubProductRepo()
	products.listErr = errors.New("connection reset")
	s := NewSeeder(newStubUserRepo(), products, validation.New(), discardLogger)

	_, err := s.Seed(context.Background(), clinicFixture())
	if !errors.Is(err, products.listErr) {
		t.Fatalf("expected wrapped list error, got %v", err)
	}
	if len(products.products) != 0 {
		t.Errorf("nothing should be inserted when the catalogue cannot be read")
	}
}
