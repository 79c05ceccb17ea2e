package service

import (
	"context"
	"errors"
	"testing"

	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

func TestProductService_ListProducts_Empty(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(products) != 0 {
		t.Fatalf("expected 0 products, got %d", len(products))
	}
}

func TestProductService_ListProducts_InsertionOrder(t *testing.T) {
	repo := newStubProductRepo()
	inputs := []ports.CreateProductInput{
		{Name: "Digital Thermometer", Category: "Medical Equipment", PurchasePrice: 25.00, SellingPrice: 35.00, Stock: 50},
		{Name: "Blood Pressure Monitor", Category: "Medical Equipment", PurchasePrice: 80.00, SellingPrice: 99.99, Stock: 25},
		{Name: "Surgical Gloves (Box of 100)", Category: "Consumables", PurchasePrice: 15.00, SellingPrice: 22.00, Stock: 200},
	}
	for _, in := range inputs {
		if _, err := repo.Create(context.Background(), in); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	svc := NewProductService(repo, discardLogger)

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	for i, p := range products {
		in := inputs[i]
		if p.Name != in.Name || p.Stock != in.Stock {
			t.Errorf("product %d: got %s/%d, want %s/%d", i, p.Name, p.Stock, in.Name, in.Stock)
		}
		if p.PurchasePrice != in.PurchasePrice || p.SellingPrice != in.SellingPrice {
			t.Errorf("product %d: prices %v/%v, want %v/%v", i, p.PurchasePrice, p.SellingPrice, in.PurchasePrice, in.SellingPrice)
		}
	}
	if products[1].SellingPrice != 99.99 {
		t.Errorf("expected 99.99, got %v", products[1].SellingPrice)
	}
}

func TestProductService_ListProducts_StoreError(t *testing.T) {
	repo := newStubProductRepo()
	repo.listErr = errors.New("db unavailable")
	svc := NewProductService(repo, discardLogger)

	_, err := svc.ListProducts(context.Background())
	if !errors.Is(err, repo.listErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestProductService_Summarize(t *testing.T) {
	repo := newStubProductRepo()
	_, _ = repo.Create(context.Background(), ports.CreateProductInput{Name: "Stethoscope", Category: "Medical Equipment", PurchasePrice: 45, SellingPrice: 75, Stock: 15})
	_, _ = repo.Create(context.Background(), ports.CreateProductInput{Name: "Bandages", Category: "Consumables", PurchasePrice: 5, SellingPrice: 8.5, Stock: 150})
	svc := NewProductService(repo, discardLogger)

	s, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalProducts != 2 || s.TotalStock != 165 {
		t.Errorf("unexpected totals: %+v", s)
	}
	if s.InventoryValue != 1425 {
		t.Errorf("expected inventory value 1425, got %v", s.InventoryValue)
	}
	if s.LowStockItems != 1 {
		t.Errorf("expected 1 low stock item, got %d", s.LowStockItems)
	}
}

func TestProductService_Summarize_StoreError(t *testing.T) {
	repo := newStubProductRepo()
	repo.listErr = errors.New("db unavailable")
	svc := NewProductService(repo, discardLogger)

	if _, err := svc.Summarize(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
