package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	categoryhttp "github.com/unimarket-dev/unimarket/internal/category/delivery/http"
	categoryrepo "github.com/unimarket-dev/unimarket/internal/category/repository"
	"github.com/unimarket-dev/unimarket/internal/config"
	favoritehttp "github.com/unimarket-dev/unimarket/internal/favorite/delivery/http"
	favoriterepo "github.com/unimarket-dev/unimarket/internal/favorite/repository"
	"github.com/unimarket-dev/unimarket/internal/httpapi"
	listinghttp "github.com/unimarket-dev/unimarket/internal/listing/delivery/http"
	listingrepo "github.com/unimarket-dev/unimarket/internal/listing/repository"
	messagehttp "github.com/unimarket-dev/unimarket/internal/message/delivery/http"
	messagerepo "github.com/unimarket-dev/unimarket/internal/message/repository"
	photohttp "github.com/unimarket-dev/unimarket/internal/photo/delivery/http"
	photorepo "github.com/unimarket-dev/unimarket/internal/photo/repository"
	"github.com/unimarket-dev/unimarket/internal/photo/storage"
	userhttp "github.com/unimarket-dev/unimarket/internal/user/delivery/http"
	userrepo "github.com/unimarket-dev/unimarket/internal/user/repository"
	"github.com/unimarket-dev/unimarket/kafka"
	"github.com/unimarket-dev/unimarket/pkg/auth"
	"github.com/unimarket-dev/unimarket/pkg/database"
	"github.com/unimarket-dev/unimarket/pkg/logger"
	"github.com/unimarket-dev/unimarket/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting marketplace service")

	secret := cfg.JWTSecret
	if secret == "" {
		if !cfg.IsDevelopment() {
			logger.Logger.Fatal().Msg("JWT_SECRET is required outside development")
		}
		secret = "dev-secret-change-me"
		logger.Logger.Warn().Msg("JWT_SECRET not set, using development default")
	}
	if err := auth.Init(secret, cfg.TokenTTL); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize token signing")
	}

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Initialize repositories and run migrations
	userRepo := userrepo.NewGormUserRepository(db)
	categoryRepo := categoryrepo.NewGormCategoryRepository(db)
	listingRepo := listingrepo.NewGormListingRepositoryWithTracing(db)
	favoriteRepo := favoriterepo.NewGormFavoriteRepository(db)
	messageRepo := messagerepo.NewGormMessageRepository(db)
	photoRepo := photorepo.NewGormPhotoRepository(db)

	migrations := []func() error{
		userRepo.AutoMigrate,
		categoryRepo.AutoMigrate,
		listingRepo.AutoMigrate,
		photoRepo.AutoMigrate,
		favoriteRepo.AutoMigrate,
		messageRepo.AutoMigrate,
	}
	for _, migrate := range migrations {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}
	categoryRepo.SeedDefaults()

	logger.Logger.Info().Msg("Database initialized successfully")

	// Photo storage
	store, err := storage.NewDiskStore(cfg.UploadDir, cfg.UploadPrefix)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize photo storage")
	}

	// Response cache, disabled unless Redis is configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Response cache enabled")
	}
	cache := httpapi.NewCache(redisClient, cfg.CacheTTL)

	// Event publisher, disabled unless brokers are configured
	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	gate := httpapi.NewAuth(userRepo)

	// Handlers
	userHandler := userhttp.NewUserHandler(userRepo, listingRepo, gate)
	categoryHandler := categoryhttp.NewCategoryHandler(categoryRepo, gate, cache)
	listingHandler := listinghttp.NewListingHandler(listingRepo, categoryRepo, gate, cache, publisher)
	favoriteHandler := favoritehttp.NewFavoriteHandler(favoriteRepo, listingRepo, gate)
	messageHandler := messagehttp.NewMessageHandler(messageRepo, userRepo, listingRepo, gate)
	photoHandler := photohttp.NewPhotoHandler(photoRepo, listingRepo, store, gate)

	// Router
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	userHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api)
	listingHandler.RegisterRoutes(api)
	favoriteHandler.RegisterRoutes(api)
	messageHandler.RegisterRoutes(api)
	photoHandler.RegisterRoutes(api)

	router.HandleFunc("/health", userHandler.HealthCheck(sqlDB)).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix(cfg.UploadPrefix + "/").Handler(
		http.StripPrefix(cfg.UploadPrefix+"/", http.FileServer(http.Dir(cfg.UploadDir))))

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), "http.server")

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}
