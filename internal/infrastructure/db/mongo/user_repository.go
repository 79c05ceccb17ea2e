package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

// UserRepository implements ports.UserRepository using MongoDB. Documents use
// a numeric _id drawn from the counters collection.
type UserRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, coll: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID        int64     `bson:"_id"`
	Username  string    `bson:"username"`
	Email     string    `bson:"email"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"created_at"`
}

func (u mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      domain.Role(u.Role),
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Check before drawing an id so re-seeding does not burn sequence values.
	n, err := r.coll.CountDocuments(ctx, bson.M{"$or": bson.A{
		bson.M{"username": in.Username},
		bson.M{"email": in.Email},
	}})
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if n > 0 {
		return nil, domain.ErrUserExists
	}

	id, err := nextID(ctx, r.db, collectionUsers)
	if err != nil {
		return nil, err
	}

	doc := mongoUser{
		ID:        id,
		Username:  in.Username,
		Email:     in.Email,
		Role:      in.Role,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}
