// ProMontazh landing API: the service catalog, the price calculator and the
// lead intake behind the installation-services landing page.
//
//	@title			ProMontazh Landing API
//	@version		1.0
//	@description	Catalog, quotes, leads and the password-gated admin panel.
//	@BasePath		/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/promontazh/landing-api/internal/api"
	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
	"github.com/promontazh/landing-api/internal/core/service"
	"github.com/promontazh/landing-api/internal/infrastructure/config"
	mongodb "github.com/promontazh/landing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/promontazh/landing-api/internal/infrastructure/db/redis"
	"github.com/promontazh/landing-api/internal/infrastructure/mail"
	"github.com/promontazh/landing-api/internal/infrastructure/memory"
	"github.com/promontazh/landing-api/internal/notify"
	"github.com/promontazh/landing-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	seed, err := catalogSeed(cfg)
	if err != nil {
		return err
	}

	// --- Storage backends ---
	var (
		catalogRepo ports.CatalogRepository
		leadRepo    ports.LeadRepository
		mongoDB     *mongo.Database
	)
	switch cfg.Storage {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		repo := mongodb.NewCatalogRepository(db)
		if err := repo.EnsureSeed(ctx, seed); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		catalogRepo = repo
		leadRepo = mongodb.NewLeadRepository(db)
		mongoDB = db
	case "memory":
		catalogRepo = memory.NewCatalogRepository(seed)
		leadRepo = memory.NewLeadRepository()
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}

	// --- Session backend ---
	var (
		sessions    ports.SessionStore
		redisClient *goredis.Client
	)
	switch cfg.SessionStore {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		sessions = redisdb.NewSessionStore(client)
		redisClient = client
	case "memory":
		sessions = memory.NewSessionStore()
	default:
		return fmt.Errorf("unknown session backend %q", cfg.SessionStore)
	}

	// --- Notifications ---
	feed := notify.NewFeed(0)
	hub := notify.NewHub(log, notify.NewLogSink(log), feed)
	hub.Start(ctx)

	// --- Lead alert mailer (optional) ---
	var mailer ports.LeadMailer
	if cfg.SMTP.Host != "" {
		mailer = mail.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.From, cfg.SMTP.To)
	}

	// --- Services ---
	catalogService := service.NewCatalogService(catalogRepo, hub, log)
	quoteService := service.NewQuoteService(catalogRepo, hub, log)
	leadService := service.NewLeadService(leadRepo, hub, mailer, log)
	authService, err := service.NewAuthService(cfg.AdminPassword, cfg.JWTSecret, sessions, cfg.SessionTTL, hub, log)
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Deps{
		Catalog:       catalogService,
		Quotes:        quoteService,
		Leads:         leadService,
		Auth:          authService,
		Sessions:      sessions,
		Feed:          feed,
		JWTSecret:     cfg.JWTSecret,
		AdminFullCRUD: cfg.Catalog.AdminFullCRUD,
		Mongo:         mongoDB,
		Redis:         redisClient,
		Logger:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// catalogSeed resolves the initial catalog: the JSON override when set,
// otherwise the built-in services.
func catalogSeed(cfg *config.Config) ([]domain.Service, error) {
	if cfg.Catalog.SeedJSON == "" {
		return domain.DefaultCatalog(), nil
	}
	var seed []domain.Service
	if err := json.Unmarshal([]byte(cfg.Catalog.SeedJSON), &seed); err != nil {
		return nil, fmt.Errorf("parse CATALOG_SEED_JSON: %w", err)
	}
	return seed, nil
}
