// Package main runs the mortgage advisory engine HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/handlers"
	"mortgage-advisory-engine/internal/services/database"
	"mortgage-advisory-engine/internal/services/pricecache"
	"mortgage-advisory-engine/internal/services/simulation"
	"mortgage-advisory-engine/internal/services/zones"
	"mortgage-advisory-engine/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer utils.Sync()
	logger := utils.GetLogger()

	reg := config.DefaultRegulatory()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database is optional; without it the engine still computes, it
	// just does not persist simulations.
	var repo simulation.Repository
	db, err := connectDatabase(cfg)
	if err != nil {
		logger.Warn("database unavailable, running in demo mode", zap.Error(err))
		db = nil
	} else {
		defer db.Close()
		simRepo := database.NewSimulationRepository(db)
		if err := simRepo.EnsureSchema(ctx); err != nil {
			logger.Warn("failed to ensure simulations schema", zap.Error(err))
		} else {
			repo = simRepo
			sweepExpiredSimulations(ctx, cfg, simRepo, logger)
		}
	}

	cache := newPriceCache(ctx, cfg, logger)
	if cache != nil {
		defer cache.Close()
	}

	zoneSource := zones.NewCSVSource(getEnv("ZONES_CSV", "data/zones.csv"), cache)
	simSvc := simulation.New(reg, repo, zoneSource)

	simHandler := handlers.NewSimulationHandler(simSvc)
	eligHandler := handlers.NewEligibilityHandler(reg)
	zonesHandler := handlers.NewZonesHandler(zoneSource, reg)
	healthHandler := handlers.NewHealthHandler(db, cfg.Stage)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/simulation", simHandler.Simulate)
	mux.HandleFunc("GET /api/simulation/{id}", simHandler.Get)
	mux.HandleFunc("GET /api/simulation", simHandler.ListRecent)
	mux.HandleFunc("POST /api/eligibility", eligHandler.All)
	mux.HandleFunc("POST /api/eligibility/ptz", eligHandler.PTZ)
	mux.HandleFunc("POST /api/eligibility/pas", eligHandler.PAS)
	mux.HandleFunc("POST /api/eligibility/action-logement", eligHandler.ActionLogement)
	mux.HandleFunc("POST /api/zones", zonesHandler.Compute)
	mux.HandleFunc("GET /health", healthHandler.Handle)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      c.Handler(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.Int("port", cfg.Port),
			zap.String("stage", cfg.Stage),
			zap.Bool("persistence", repo != nil),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

// connectDatabase honors a full DATABASE_URL when one is provided,
// otherwise builds the connection string from the per-field settings.
func connectDatabase(cfg *config.Config) (*database.DB, error) {
	if cfg.DBURL != "" {
		return database.NewFromURL(cfg.DBURL)
	}
	return database.New(cfg)
}

// sweepExpiredSimulations drops snapshots past the retention window at
// startup. Retention is off by default.
func sweepExpiredSimulations(ctx context.Context, cfg *config.Config, repo *database.SimulationRepository, logger *zap.Logger) {
	if cfg.RetentionDays <= 0 {
		return
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -cfg.RetentionDays)
	deleted, err := repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Warn("retention sweep failed", zap.Error(err))
		return
	}
	if deleted > 0 {
		logger.Info("expired simulations removed",
			zap.Int64("deleted", deleted),
			zap.Int("retention_days", cfg.RetentionDays),
		)
	}
}

// newPriceCache picks Redis when configured, an in-process cache
// otherwise.
func newPriceCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) pricecache.Cache {
	ttl := time.Duration(cfg.PriceCacheTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = pricecache.DefaultTTL
	}

	if cfg.RedisAddr != "" {
		cache, err := pricecache.NewRedisCache(ctx, cfg.RedisAddr, ttl)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory price cache", zap.Error(err))
			return pricecache.NewMemoryCache(ttl)
		}
		logger.Info("redis price cache connected", zap.String("addr", cfg.RedisAddr))
		return cache
	}

	return pricecache.NewMemoryCache(ttl)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
