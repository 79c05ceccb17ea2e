package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/clinicadmin/inventory-api/docs"
	"github.com/clinicadmin/inventory-api/internal/api/handler"
	"github.com/clinicadmin/inventory-api/internal/api/metrics"
	"github.com/clinicadmin/inventory-api/internal/api/middleware"
	"github.com/clinicadmin/inventory-api/internal/core/domain"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
	"github.com/clinicadmin/inventory-api/internal/pkg/validation"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Resolver    ports.TokenResolver
	Gate        ports.AccessGate
	Products    ports.ProductService
	Store       handler.Pinger
	Driver      string
	Logger      zerolog.Logger
	CORSOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Each router owns its own Prometheus registry.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "inventory",
		Registerer: reg,
	}))

	// --- Operational routes (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler(deps.Store, deps.Driver)
	e.GET("/healthcheck", healthHandler.Healthcheck)
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – is the store up?

	// --- API routes: every request resolves its bearer token first ---
	v1 := e.Group("/v1", middleware.Authenticate(deps.Resolver, m))

	authHandler := handler.NewAuthHandler(deps.Resolver)
	v1.POST("/auth/authenticate", authHandler.Authenticate)
	v1.GET("/auth/me", authHandler.Me)

	productHandler := handler.NewProductHandler(deps.Products, m)
	products := v1.Group("/products", middleware.RequireRole(deps.Gate, domain.RoleAdmin, m))
	products.GET("", productHandler.List)
	products.GET("/summary", productHandler.Summary)

	return e
}
