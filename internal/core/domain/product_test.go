package domain

import "testing"

func TestProduct_ProfitAndMargin(t *testing.T) {
	cases := []struct {
		name       string
		purchase   float64
		selling    float64
		wantProfit float64
		wantMargin float64
	}{
		{"thermometer", 25.00, 35.00, 10.00, 40.0},
		{"bandages", 5.00, 8.50, 3.50, 70.0},
		{"stethoscope", 45.00, 75.00, 30.00, 66.7},
		{"loss", 10.00, 8.00, -2.00, -20.0},
		{"zero purchase", 0, 5, 5, 0},
	}

	for _, tc := range cases {
		p := Product{PurchasePrice: tc.purchase, SellingPrice: tc.selling}
		if got := p.Profit(); got != tc.wantProfit {
			t.Errorf("%s: profit = %v, want %v", tc.name, got, tc.wantProfit)
		}
		if got := p.MarginPercent(); got != tc.wantMargin {
			t.Errorf("%s: margin = %v, want %v", tc.name, got, tc.wantMargin)
		}
	}
}

func TestProduct_StockStatus(t *testing.T) {
	cases := []struct {
		stock int
		want  StockStatus
	}{
		{0, StockOut},
		{1, StockLow},
		{20, StockLow},
		{21, StockIn},
		{200, StockIn},
	}

	for _, tc := range cases {
		if got := (Product{Stock: tc.stock}).StockStatus(); got != tc.want {
			t.Errorf("stock=%d: expected %q, got %q", tc.stock, tc.want, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "Digital Thermometer", PurchasePrice: 25, SellingPrice: 35, Stock: 50},
		{ID: 2, Name: "Blood Pressure Monitor", PurchasePrice: 80, SellingPrice: 120, Stock: 25},
		{ID: 5, Name: "Stethoscope", PurchasePrice: 45, SellingPrice: 75, Stock: 15},
		{ID: 9, Name: "Masks", PurchasePrice: 1.99, SellingPrice: 2.99, Stock: 0},
	}

	s := Summarize(products)

	if s.TotalProducts != 4 {
		t.Errorf("TotalProducts = %d, want 4", s.TotalProducts)
	}
	if s.TotalStock != 90 {
		t.Errorf("TotalStock = %d, want 90", s.TotalStock)
	}
	// 25*50 + 80*25 + 45*15 + 0
	if s.InventoryValue != 3925 {
		t.Errorf("InventoryValue = %v, want 3925", s.InventoryValue)
	}
	if s.LowStockItems != 2 {
		t.Errorf("LowStockItems = %d, want 2", s.LowStockItems)
	}
	if len(s.Products) != 4 {
		t.Fatalf("expected 4 product lines, got %d", len(s.Products))
	}
	for i, line := range s.Products {
		if line.ProductID != products[i].ID {
			t.Errorf("line %d: expected product %d, got %d", i, products[i].ID, line.ProductID)
		}
	}
	if s.Products[3].StockStatus != StockOut {
		t.Errorf("expected last line out_of_stock, got %q", s.Products[3].StockStatus)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalProducts != 0 || s.TotalStock != 0 || s.InventoryValue != 0 || s.LowStockItems != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
	if s.Products == nil {
		t.Fatal("Products must be an empty slice, not nil")
	}
}
