package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/recircle-platform/recircle-backend/api/routes"
	"github.com/recircle-platform/recircle-backend/internal/auth"
	"github.com/recircle-platform/recircle-backend/internal/badges"
	"github.com/recircle-platform/recircle-backend/internal/categorize"
	"github.com/recircle-platform/recircle-backend/internal/chatbot"
	"github.com/recircle-platform/recircle-backend/internal/claims"
	"github.com/recircle-platform/recircle-backend/internal/impact"
	"github.com/recircle-platform/recircle-backend/internal/insights"
	"github.com/recircle-platform/recircle-backend/internal/listings"
	"github.com/recircle-platform/recircle-backend/internal/partners"
	"github.com/recircle-platform/recircle-backend/internal/seed"
	"github.com/recircle-platform/recircle-backend/pkg/config"
	"github.com/recircle-platform/recircle-backend/pkg/db"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
	"github.com/recircle-platform/recircle-backend/pkg/metrics"
	"github.com/recircle-platform/recircle-backend/pkg/migrate"
	"github.com/recircle-platform/recircle-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	if cfg.FeatureFlags.SeedSample {
		seeder, err := seed.New(dbClient, cfg.Password, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create seeder", err)
			os.Exit(1)
		}
		if err := seeder.Run(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to seed sample data", err)
			os.Exit(1)
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, idempotency and rate limiting disabled")
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	claimMetrics := metrics.NewClaimMetrics(registry)

	svcs, err := buildServices(dbClient, cfg, logg, claimMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to build services", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	instance, err := os.Hostname()
	if err != nil || instance == "" {
		instance = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, httpMetrics, registry, svcs),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func buildServices(dbClient *db.Client, cfg *config.Config, logg *logger.Logger, claimMetrics *metrics.ClaimMetrics) (routes.Services, error) {
	conn := dbClient.DB()

	listingService, err := listings.NewService(listings.NewRepository(conn), logg)
	if err != nil {
		return routes.Services{}, err
	}
	claimService, err := claims.NewService(claims.NewRepository(conn), dbClient, logg, claimMetrics)
	if err != nil {
		return routes.Services{}, err
	}
	impactService, err := impact.NewService(impact.NewRepository(conn), logg)
	if err != nil {
		return routes.Services{}, err
	}
	partnerService, err := partners.NewService(partners.NewRepository(conn), logg)
	if err != nil {
		return routes.Services{}, err
	}
	badgeService, err := badges.NewService(badges.NewRepository(conn), logg)
	if err != nil {
		return routes.Services{}, err
	}
	insightService, err := insights.NewService(logg)
	if err != nil {
		return routes.Services{}, err
	}
	chatbotService, err := chatbot.NewService(logg)
	if err != nil {
		return routes.Services{}, err
	}
	categorizeService, err := categorize.NewService(logg)
	if err != nil {
		return routes.Services{}, err
	}
	authService, err := auth.NewService(partners.NewRepository(conn), cfg.JWT, logg)
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Listings:   listingService,
		Claims:     claimService,
		Impact:     impactService,
		Partners:   partnerService,
		Badges:     badgeService,
		Insights:   insightService,
		Chatbot:    chatbotService,
		Categorize: categorizeService,
		Auth:       authService,
	}, nil
}
