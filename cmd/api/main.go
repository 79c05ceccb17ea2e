package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clinicadmin/inventory-api/internal/api"
	"github.com/clinicadmin/inventory-api/internal/core/service"
	"github.com/clinicadmin/inventory-api/internal/infrastructure/config"
	"github.com/clinicadmin/inventory-api/internal/infrastructure/db"
	"github.com/clinicadmin/inventory-api/pkg/logger"
)

// @title						Clinic Inventory Admin API
// @version					1.0
// @description				Token resolution, admin access control and product catalogue reads for clinic inventory.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
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
		Service: "inventory-api",
	})

	store, err := db.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open store")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	e := api.NewRouter(api.Dependencies{
		Resolver:    service.NewTokenResolver(store.Users, log),
		Gate:        service.NewAccessGate(log),
		Products:    service.NewProductService(store.Products, log),
		Store:       store,
		Driver:      store.Driver,
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
	})

	addr := net.JoinHostPort("", cfg.Port)
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
