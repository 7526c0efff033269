package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/stockpile/inventory-system/internal/api"
	"github.com/stockpile/inventory-system/internal/core/domain"
	"github.com/stockpile/inventory-system/internal/core/ports"
	"github.com/stockpile/inventory-system/internal/core/service"
	"github.com/stockpile/inventory-system/internal/infrastructure/config"
	mongodb "github.com/stockpile/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/stockpile/inventory-system/internal/infrastructure/db/redis"
	"github.com/stockpile/inventory-system/internal/infrastructure/memory"
	"github.com/stockpile/inventory-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; this is the one place stderr is used directly.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	creds, err := memory.NewCredentialStore([]memory.SeedUser{
		{Username: cfg.Users.AdminUsername, Password: cfg.Users.AdminPassword, Role: domain.RoleAdmin},
		{Username: cfg.Users.UserUsername, Password: cfg.Users.UserPassword, Role: domain.RoleUser},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed credentials")
	}

	var (
		repo ports.ProductRepository
		db   *gomongo.Database
	)
	switch cfg.StoreBackend {
	case "mongo":
		client, database, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connect mongo")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect")
			}
		}()
		db = database
		repo = mongodb.NewProductRepository(database)
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo product store")
	case "memory", "":
		repo = memory.NewProductRepository()
		log.Info().Msg("using in-memory product store")
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown store backend")
	}

	var (
		rdb   *goredis.Client
		dedup service.AdjustDeduper
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close")
			}
		}()
		dedup = redisdb.NewAdjustDedup(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("adjustment idempotency enabled")
	}

	authService := service.NewAuthService(creds, cfg.JWTSecret, cfg.TokenTTL)
	productService := service.NewProductService(repo, dedup, log)

	e := api.NewRouter(api.Dependencies{
		AuthService:    authService,
		ProductService: productService,
		JWTSecret:      cfg.JWTSecret,
		Mongo:          db,
		Redis:          rdb,
		Logger:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
