package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vellaperfumeria/storefront/internal/application/session"
	"github.com/vellaperfumeria/storefront/internal/domain/order"
	"github.com/vellaperfumeria/storefront/internal/infrastructure/config"
	"github.com/vellaperfumeria/storefront/internal/infrastructure/logger"
	"github.com/vellaperfumeria/storefront/internal/infrastructure/staticdata"
	"github.com/vellaperfumeria/storefront/internal/infrastructure/storage"
	"github.com/vellaperfumeria/storefront/internal/infrastructure/woocommerce"
	"github.com/vellaperfumeria/storefront/internal/interfaces/http/handler"
	"github.com/vellaperfumeria/storefront/internal/interfaces/http/middleware"
	"github.com/vellaperfumeria/storefront/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer logger.Sync(log)

	log.Info("starting storefront server",
		zap.String("version", version),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	products := staticdata.NewDefaultCatalogRepository()
	posts := staticdata.NewDefaultPostRepository()

	carts, closeCarts := buildCartStore(cfg, log)
	defer closeCarts()

	registry := session.NewRegistry(session.Deps{
		Products: products,
		Posts:    posts,
		Carts:    carts,
		Gateway:  buildGateway(cfg, products, log),
		Logger:   log,
	}, cfg.Session.TTL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go registry.Run(ctx, cfg.Session.SweepInterval)

	engine := buildEngine(cfg, log, registry, products, posts)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}

// buildCartStore selects the durable snapshot backend: Redis when
// configured, otherwise process memory
func buildCartStore(cfg *config.Config, log *zap.Logger) (storage.CartStore, func()) {
	if !cfg.Redis.Enabled() {
		log.Warn("redis not configured, cart snapshots will not survive restarts")
		return storage.NewInMemoryCartStore(), func() {}
	}

	store, err := storage.NewRedisCartStore(storage.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Error("redis unavailable, falling back to in-memory cart snapshots", zap.Error(err))
		return storage.NewInMemoryCartStore(), func() {}
	}

	log.Info("redis cart store connected",
		zap.String("host", cfg.Redis.Host),
		zap.Int("port", cfg.Redis.Port),
	)
	return store, func() {
		if err := store.Close(); err != nil {
			log.Warn("redis close failed", zap.Error(err))
		}
	}
}

// buildGateway creates the remote shop client, or nil when no store is
// configured; sessions then run in local-only mode
func buildGateway(cfg *config.Config, products *staticdata.CatalogRepository, log *zap.Logger) order.Gateway {
	if !cfg.Shop.Enabled() {
		log.Warn("shop not configured, orders will use local fallback references")
		return nil
	}

	client, err := woocommerce.NewClient(&woocommerce.Config{
		BaseURL:        cfg.Shop.BaseURL,
		ConsumerKey:    cfg.Shop.ConsumerKey,
		ConsumerSecret: cfg.Shop.ConsumerSecret,
		TimeoutSeconds: cfg.Shop.TimeoutSeconds,
	}, products)
	if err != nil {
		log.Error("invalid shop configuration, orders will use local fallback references", zap.Error(err))
		return nil
	}

	log.Info("shop gateway configured", zap.String("base_url", cfg.Shop.BaseURL))
	return client
}

func buildEngine(cfg *config.Config, log *zap.Logger, registry *session.Registry,
	products *staticdata.CatalogRepository, posts *staticdata.PostRepository) *gin.Engine {

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	router.NewRouter(engine).
		Register(handler.NewSessionHandler(registry)).
		Register(handler.NewCatalogHandler(products, posts)).
		Register(handler.NewSystemHandler(registry, version)).
		Setup()

	return engine
}
