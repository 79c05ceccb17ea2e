package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

// ProductRepository implements ports.ProductRepository using MongoDB. Prices
// are stored as Decimal128 and converted to float64 on read.
type ProductRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{db: db, col: db.Collection(collectionProducts)}
}

type mongoProduct struct {
	ID            int64                `bson:"_id"`
	Name          string               `bson:"name"`
	Category      string               `bson:"category"`
	PurchasePrice primitive.Decimal128 `bson:"purchase_price"`
	SellingPrice  primitive.Decimal128 `bson:"selling_price"`
	Stock         int                  `bson:"stock"`
	CreatedAt     time.Time            `bson:"created_at"`
}

func (m mongoProduct) toDomain() (domain.Product, error) {
	purchase, err := decimalToFloat(m.PurchasePrice)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d purchase_price: %w", m.ID, err)
	}
	selling, err := decimalToFloat(m.SellingPrice)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d selling_price: %w", m.ID, err)
	}
	return domain.Product{
		ID:            m.ID,
		Name:          m.Name,
		Category:      m.Category,
		PurchasePrice: purchase,
		SellingPrice:  selling,
		Stock:         m.Stock,
		CreatedAt:     m.CreatedAt.UTC(),
	}, nil
}

// List returns every product sorted by _id, which follows insertion order.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx) //nolint:errcheck

	products := []domain.Product{}
	for cur.Next(ctx) {
		var doc mongoProduct
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		p, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	purchase, err := floatToDecimal(in.PurchasePrice)
	if err != nil {
		return nil, err
	}
	selling, err := floatToDecimal(in.SellingPrice)
	if err != nil {
		return nil, err
	}

	id, err := nextID(ctx, r.db, collectionProducts)
	if err != nil {
		return nil, err
	}

	doc := mongoProduct{
		ID:            id,
		Name:          in.Name,
		Category:      in.Category,
		PurchasePrice: purchase,
		SellingPrice:  selling,
		Stock:         in.Stock,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	p, err := doc.toDomain()
	if err != nil {
		return nil, err
	}
	return &p, nil
}
