package main

import (
	"context"
	"crypto/tls"

	"github.com/dishu-studio/studio-backend/config"
	"github.com/dishu-studio/studio-backend/db"
	"github.com/dishu-studio/studio-backend/handlers"
	"github.com/dishu-studio/studio-backend/internal/store/postgres"
	"github.com/dishu-studio/studio-backend/logger"
	"github.com/dishu-studio/studio-backend/router"
	"github.com/dishu-studio/studio-backend/services"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Run schema migrations before opening the pool
	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize database connection
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.ConnString())
	if err != nil {
		log.Fatalf("Failed to parse database config: %v", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	if cfg.IsProduction() {
		poolConfig.ConnConfig.TLSConfig = &tls.Config{
			ServerName: cfg.Database.Host,
			MinVersion: tls.VersionTLS12,
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Initialize Redis client with TLS in production
	redisOptions := &redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	if cfg.Redis.UseTLS || cfg.IsProduction() {
		redisOptions.TLSConfig = &tls.Config{
			ServerName: cfg.Redis.Address,
			MinVersion: tls.VersionTLS12,
		}
	}

	redisClient := redis.NewClient(redisOptions)
	defer redisClient.Close()

	// Stores
	bookingStore := postgres.NewBookingStore(pool)
	contactStore := postgres.NewContactStore(pool)

	// Services
	emailService := services.NewEmailService(&cfg.Email)
	healthService := services.NewHealthService(pool, redisClient, cfg.Server.Version)

	// Handlers
	bookingHandler := handlers.NewBookingHandler(bookingStore, emailService)
	contactHandler := handlers.NewContactHandler(contactStore)
	healthHandler := handlers.NewHealthHandler(healthService)

	// Router setup
	r := router.SetupRouter(router.Dependencies{
		Config:         cfg,
		BookingHandler: bookingHandler,
		ContactHandler: contactHandler,
		HealthHandler:  healthHandler,
		RedisClient:    redisClient,
		Logger:         log,
	})

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
