package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/promontazh/landing-api/internal/api/handler"
	"github.com/promontazh/landing-api/internal/api/middleware"
	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
)

// Deps collects everything the HTTP layer needs. Mongo and Redis are nil
// when the corresponding backend runs in memory.
type Deps struct {
	Catalog ports.CatalogService
	Quotes  ports.QuoteService
	Leads   ports.LeadService
	Auth    ports.AuthService

	Sessions ports.SessionStore
	Feed     handler.NotificationFeed

	JWTSecret string
	// AdminFullCRUD exposes the catalog add/delete endpoints.
	AdminFullCRUD bool

	Mongo *mongo.Database
	Redis *redis.Client

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("landing"))

	// --- Handlers ---
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	quoteHandler := handler.NewQuoteHandler(deps.Quotes)
	leadHandler := handler.NewLeadHandler(deps.Leads)
	authHandler := handler.NewAuthHandler(deps.Auth)
	notificationHandler := handler.NewNotificationHandler(deps.Feed)

	// --- Public routes ---
	e.GET("/v1/services", catalogHandler.List)
	e.POST("/v1/quotes", quoteHandler.Calculate)
	e.POST("/v1/leads", leadHandler.Register)
	e.POST("/v1/admin/login", authHandler.Login)

	// --- Admin routes ---
	admin := e.Group("/v1/admin",
		middleware.Auth(deps.JWTSecret, deps.Sessions),
		middleware.RBAC(domain.RoleAdmin),
	)
	admin.POST("/logout", authHandler.Logout)
	admin.GET("/leads", leadHandler.List)
	admin.GET("/notifications", notificationHandler.List)
	admin.PATCH("/services/:id", catalogHandler.UpdateField)
	admin.PUT("/services/:id/price", catalogHandler.SetPrice)
	if deps.AdminFullCRUD {
		admin.POST("/services", catalogHandler.Create)
		admin.DELETE("/services/:id", catalogHandler.Delete)
	}

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
