package domain

import (
	"math"
	"time"
)

// LowStockThreshold is the stock level at or below which a product counts as
// running low.
const LowStockThreshold = 20

// StockStatus classifies a product's stock level.
type StockStatus string

const (
	StockOut StockStatus = "out_of_stock"
	StockLow StockStatus = "low_stock"
	StockIn  StockStatus = "in_stock"
)

// Product is one inventory line item. Prices are always plain numbers here,
// whatever representation the store uses for currency.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	PurchasePrice float64   `json:"purchase_price"`
	SellingPrice  float64   `json:"selling_price"`
	Stock         int       `json:"stock"`
	CreatedAt     time.Time `json:"created_at"`
}

// Profit is the per-unit difference between selling and purchase price.
func (p Product) Profit() float64 {
	return roundTo(p.SellingPrice-p.PurchasePrice, 2)
}

// MarginPercent is the profit relative to the purchase price, rounded to one
// decimal. Zero when the purchase price is not positive.
func (p Product) MarginPercent() float64 {
	if p.PurchasePrice <= 0 {
		return 0
	}
	return roundTo((p.SellingPrice-p.PurchasePrice)/p.PurchasePrice*100, 1)
}

func (p Product) StockStatus() StockStatus {
	switch {
	case p.Stock <= 0:
		return StockOut
	case p.Stock <= LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// ProductFigures holds the derived numbers for a single product.
type ProductFigures struct {
	ProductID     int64       `json:"product_id"`
	Name          string      `json:"name"`
	Profit        float64     `json:"profit"`
	MarginPercent float64     `json:"margin_percent"`
	StockStatus   StockStatus `json:"stock_status"`
}

// InventorySummary aggregates a product list into the figures shown on the
// admin dashboard.
type InventorySummary struct {
	TotalProducts  int              `json:"total_products"`
	TotalStock     int              `json:"total_stock"`
	InventoryValue float64          `json:"inventory_value"`
	LowStockItems  int              `json:"low_stock_items"`
	Products       []ProductFigures `json:"products"`
}

// Summarize computes the InventorySummary for products, keeping their order.
func Summarize(products []Product) InventorySummary {
	s := InventorySummary{
		TotalProducts: len(products),
		Products:      make([]ProductFigures, 0, len(products)),
	}
	for _, p := range products {
		s.TotalStock += p.Stock
		s.InventoryValue += p.PurchasePrice * float64(p.Stock)
		if p.Stock <= LowStockThreshold {
			s.LowStockItems++
		}
		s.Products = append(s.Products, ProductFigures{
			ProductID:     p.ID,
			Name:          p.Name,
			Profit:        p.Profit(),
			MarginPercent: p.MarginPercent(),
			StockStatus:   p.StockStatus(),
		})
	}
	s.InventoryValue = roundTo(s.InventoryValue, 2)
	return s
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
