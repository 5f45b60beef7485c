package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taste-toffel-api/catalog"
	"taste-toffel-api/config"
	"taste-toffel-api/handlers"
	"taste-toffel-api/logx"
	"taste-toffel-api/middleware"
	"taste-toffel-api/routes"
	"taste-toffel-api/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal(err, "failed to load configuration")
	}
	logx.Init(cfg.IsDevelopment(), cfg.LogLevel)

	// Set Gin mode
	switch {
	case cfg.GinMode != "":
		gin.SetMode(cfg.GinMode)
	case cfg.IsDevelopment():
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	menu, err := buildCatalog(ctx, cfg)
	if err != nil {
		logx.Fatal(err, "failed to set up the menu catalog", "store", cfg.CatalogStore)
	}

	tokens := session.NewTokens([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTExpiration, nil)
	loginLimiter := middleware.NewIPRateLimiter(middleware.PerMinute(cfg.LoginRatePerMinute), cfg.LoginBurst)
	go loginLimiter.Cleanup(ctx, 3*time.Minute)

	r := gin.New()
	r.Use(logx.RequestLogger(), gin.Recovery())
	routes.SetupRoutes(r, routes.Deps{
		Handler:      handlers.New(menu, tokens, nil),
		Tokens:       tokens,
		LoginLimiter: loginLimiter,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:         300,
	}).Handler(r)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      corsHandler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info("server running", "addr", "http://localhost"+cfg.Addr(), "env", cfg.Env, "store", cfg.CatalogStore)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "failed to start server")
		}
	}()

	<-ctx.Done()
	logx.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "server forced to shutdown")
	}
	logx.Info("server stopped")
}

// buildCatalog opens the configured store and loads the demo menu into it.
func buildCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	var store catalog.Store
	switch cfg.CatalogStore {
	case config.StoreMemory:
		store = catalog.NewMemoryStore()
	default:
		db, err := config.OpenDB(cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		sqlStore, err := catalog.NewSQLStore(db)
		if err != nil {
			return nil, err
		}
		store = sqlStore
	}

	menu := catalog.New(store, nil)
	if err := menu.Seed(ctx, catalog.DemoMenu()); err != nil {
		return nil, err
	}
	logx.Info("menu catalog seeded", "items", len(catalog.DemoMenu()))
	return menu, nil
}
