package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

// ProductRepository implements ports.ProductRepository backed by PostgreSQL.
// NUMERIC prices are read as text and converted, so callers always see numbers.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, category, purchase_price::text, selling_price::text, stock, created_at`

// List returns every product ordered by id, which follows insertion order.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, category, purchase_price, selling_price, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productColumns,
		in.Name, in.Category, in.PurchasePrice, in.SellingPrice, in.Stock)

	p, err := scanProduct(row)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p                       domain.Product
		purchaseRaw, sellingRaw string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &purchaseRaw, &sellingRaw, &p.Stock, &p.CreatedAt); err != nil {
		return domain.Product{}, fmt.Errorf("scan product: %w", err)
	}

	var err error
	if p.PurchasePrice, err = parseNumeric(purchaseRaw); err != nil {
		return domain.Product{}, fmt.Errorf("product %d purchase_price: %w", p.ID, err)
	}
	if p.SellingPrice, err = parseNumeric(sellingRaw); err != nil {
		return domain.Product{}, fmt.Errorf("product %d selling_price: %w", p.ID, err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
