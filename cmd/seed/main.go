// Command seed loads users and products into the configured store.
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/clinicadmin/inventory-api/internal/core/ports"
	"github.com/clinicadmin/inventory-api/internal/core/service"
	"github.com/clinicadmin/inventory-api/internal/infrastructure/config"
	"github.com/clinicadmin/inventory-api/internal/infrastructure/db"
	"github.com/clinicadmin/inventory-api/internal/pkg/validation"
	"github.com/clinicadmin/inventory-api/pkg/logger"
)

//go:embed fixture.json
var defaultFixture []byte

func main() {
	file := flag.String("file", "", "path to a JSON fixture (defaults to the built-in clinic fixture)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "inventory-seed",
	})

	fx, err := loadFixture(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read fixture")
	}

	store, err := db.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open store")
	}
	defer store.Close(context.Background()) //nolint:errcheck

	seeder := service.NewSeeder(store.Users, store.Products, validation.New(), log)
	res, err := seeder.Seed(ctx, fx)
	if err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1) //nolint:gocritic // startup failure, deferred close is best-effort
	}

	log.Info().
		Int("users_created", res.UsersCreated).
		Int("users_skipped", res.UsersSkipped).
		Int("products_created", res.ProductsCreated).
		Int("products_skipped", res.ProductsSkipped).
		Msg("seed complete")
}

func loadFixture(path string) (ports.Fixture, error) {
	var fx ports.Fixture

	data := defaultFixture
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return fx, err
		}
		data = b
	}

	if err := json.Unmarshal(data, &fx); err != nil {
		return fx, fmt.Errorf("decode fixture: %w", err)
	}
	return fx, nil
}
