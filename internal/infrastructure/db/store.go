// Package db opens the configured persistence backend and exposes it through
// the core ports.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/clinicadmin/inventory-api/internal/core/ports"
	"github.com/clinicadmin/inventory-api/internal/infrastructure/config"
	mongostore "github.com/clinicadmin/inventory-api/internal/infrastructure/db/mongo"
	pgstore "github.com/clinicadmin/inventory-api/internal/infrastructure/db/postgres"
)

// Store bundles the repositories of one backend with its lifecycle hooks.
type Store struct {
	Driver   string
	Users    ports.UserRepository
	Products ports.ProductRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping checks that the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backend's connections.
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}

// Open connects to the backend selected by cfg.StoreDriver. Postgres
// migrations run first when cfg.Postgres.Migrate is set; Mongo indexes are
// always ensured.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if cfg.Postgres.Migrate {
			if err := pgstore.Migrate(ctx, cfg.Postgres.DSN, log); err != nil {
				return nil, err
			}
		}
		pool, err := pgstore.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.StoreDriver).Msg("connected to postgres")
		return &Store{
			Driver:   cfg.StoreDriver,
			Users:    pgstore.NewUserRepository(pool),
			Products: pgstore.NewProductRepository(pool),
			ping:     pool.Ping,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverMongo:
		client, database, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("driver", cfg.StoreDriver).Str("database", cfg.Mongo.Database).Msg("connected to mongo")
		return &Store{
			Driver:   cfg.StoreDriver,
			Users:    mongostore.NewUserRepository(database),
			Products: mongostore.NewProductRepository(database),
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
			close: client.Disconnect,
		}, nil
	}
	return nil, fmt.Errorf("db: unsupported store driver %q", cfg.StoreDriver)
}
