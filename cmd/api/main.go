package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/auth"
	"github.com/01moynul/flordelima-golang/internal/bank"
	"github.com/01moynul/flordelima-golang/internal/catalog"
	"github.com/01moynul/flordelima-golang/internal/config"
	"github.com/01moynul/flordelima-golang/internal/database"
	"github.com/01moynul/flordelima-golang/internal/handlers"
	"github.com/01moynul/flordelima-golang/internal/logger"
	"github.com/01moynul/flordelima-golang/internal/pix"
	"github.com/01moynul/flordelima-golang/internal/routes"
	"github.com/01moynul/flordelima-golang/internal/services"
	"github.com/01moynul/flordelima-golang/internal/telemetry"
)

func main() {
	// 0. --- Load Configuration (.env + environment) ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. --- Telemetry ---
	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:     cfg.OtelEnabled,
		Endpoint:    cfg.OtelEndpoint,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		zl.Fatal("failed to set up telemetry", zap.Error(err))
	}
	metrics, err := telemetry.NewMetrics(otel.Meter(cfg.ServiceName))
	if err != nil {
		zl.Fatal("failed to register metrics", zap.Error(err))
	}

	// 2. --- Database Connection ---
	db, err := database.Connect(ctx, database.Options{
		URI:          cfg.MongoURI,
		Database:     cfg.MongoDatabase,
		Attempts:     cfg.MongoConnectRetries,
		Backoff:      cfg.MongoConnectBackoff,
		Transactions: cfg.MongoTransactions,
	}, zl)
	if err != nil {
		zl.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		zl.Fatal("failed to create indexes", zap.Error(err))
	}

	carts := database.NewCartRepository(db)
	orders := database.NewOrderRepository(db)

	// 3. --- Services ---
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	products := catalog.Default()

	orderService := services.NewOrderService(orders, carts, db, cfg.PixKey, metrics, zl)

	app := &handlers.Handlers{
		Carts:  services.NewCartService(carts, products, zl),
		Orders: orderService,
		Payments: services.NewPaymentService(services.PaymentDeps{
			Payments: database.NewPaymentRepository(db),
			Orders:   orders,
			Users:    database.NewUserRepository(db),
			Gateway: pix.NewClient(pix.Config{
				BaseURL:   cfg.PayOnHubBaseURL,
				PublicKey: cfg.PayOnHubPublic,
				SecretKey: cfg.PayOnHubSecret,
				Timeout:   cfg.PayOnHubTimeout,
			}),
			Bank:          bank.Stub{},
			PublicBaseURL: cfg.PublicBaseURL,
			Metrics:       metrics,
			Log:           zl,
		}),
		Favorites:     services.NewFavoritesService(database.NewFavoritesRepository(db), zl),
		Users:         services.NewUserService(database.NewUserRepository(db), tokens, zl),
		Addresses:     services.NewAddressService(database.NewAddressRepository(db), zl),
		Catalog:       products,
		Tokens:        tokens,
		DB:            db,
		SecureCookies: cfg.IsProduction(),
		Log:           zl,
	}

	// --- 4. Background Workers ---
	// Pending orders that were never paid are cancelled after ORDER_EXPIRY.
	if cfg.OrderExpiry > 0 {
		go orderService.RunExpiry(ctx, cfg.OrderExpiry, cfg.OrderExpiryInterval)
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, routes.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		ServiceName:    cfg.ServiceName,
		Tracing:        cfg.OtelEnabled,
		Log:            zl,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// --- Start Server ---
	go func() {
		zl.Info("starting Flor de Lima API", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("http shutdown", zap.Error(err))
	}
	if err := db.Close(shutdownCtx); err != nil {
		zl.Error("mongo disconnect", zap.Error(err))
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		zl.Error("telemetry shutdown", zap.Error(err))
	}
}
