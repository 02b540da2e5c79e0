package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/recircle-platform/recircle-backend/api/controllers"
	"github.com/recircle-platform/recircle-backend/api/middleware"
	"github.com/recircle-platform/recircle-backend/internal/auth"
	"github.com/recircle-platform/recircle-backend/internal/badges"
	"github.com/recircle-platform/recircle-backend/internal/categorize"
	"github.com/recircle-platform/recircle-backend/internal/chatbot"
	"github.com/recircle-platform/recircle-backend/internal/claims"
	"github.com/recircle-platform/recircle-backend/internal/impact"
	"github.com/recircle-platform/recircle-backend/internal/insights"
	"github.com/recircle-platform/recircle-backend/internal/listings"
	"github.com/recircle-platform/recircle-backend/internal/partners"
	"github.com/recircle-platform/recircle-backend/pkg/config"
	"github.com/recircle-platform/recircle-backend/pkg/db"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
	"github.com/recircle-platform/recircle-backend/pkg/metrics"
	pkgredis "github.com/recircle-platform/recircle-backend/pkg/redis"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Listings   listings.Service
	Claims     claims.Service
	Impact     impact.Service
	Partners   partners.Service
	Badges     badges.Service
	Insights   insights.Service
	Chatbot    chatbot.Service
	Categorize categorize.Service
	Auth       auth.Service
}

// NewRouter assembles the full HTTP surface. The Redis client is
// optional: without it the claim idempotency guard and the login rate
// limit degrade to passthrough.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *pkgredis.Client,
	httpMetrics *metrics.HTTPMetrics,
	registry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbClient, redisClient))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(svcs.Auth, logg))

		r.Get("/health", controllers.Health(cfg))

		if redisClient != nil {
			r.With(middleware.LoginRateLimit(cfg.LoginRate, redisClient, logg)).
				Post("/login", controllers.Login(svcs.Auth, logg))
		} else {
			r.Post("/login", controllers.Login(svcs.Auth, logg))
		}

		r.Post("/listings", controllers.CreateListing(svcs.Listings, logg))
		r.Get("/listings", controllers.GetListings(svcs.Listings, logg))
		r.Get("/categories", controllers.GetCategories(svcs.Listings, logg))
		r.Get("/locations", controllers.GetLocations(svcs.Listings, logg))

		r.Post("/donations", controllers.CreateDonation(svcs.Listings, logg))
		r.Get("/donations", controllers.GetDonations(svcs.Listings, logg))

		if redisClient != nil {
			r.With(middleware.Idempotency(redisClient, cfg.ClaimGuardTTL, logg)).
				Post("/claim", controllers.ClaimItem(svcs.Claims, logg))
		} else {
			r.Post("/claim", controllers.ClaimItem(svcs.Claims, logg))
		}

		r.Get("/impact/{partner_id}", controllers.GetPartnerImpact(svcs.Impact, logg))
		r.Get("/dashboard-stats", controllers.GetDashboardStats(svcs.Impact, logg))

		r.Get("/partners", controllers.GetPartners(svcs.Partners, logg))

		r.Get("/badges/{partner_id}", controllers.GetBadges(svcs.Badges, logg))
		r.Get("/badges/{partner_id}/challenges", controllers.GetChallenges(svcs.Badges, logg))

		r.Get("/donation-locations", controllers.GetDonationLocations(svcs.Insights, logg))
		r.Get("/donation-trends", controllers.GetDonationTrends(svcs.Insights, logg))
		r.Get("/forecast/{partner_id}", controllers.GetForecast(svcs.Insights, logg))
		r.Get("/partner-insights/{partner_id}", controllers.GetPartnerInsights(svcs.Insights, logg))
		r.Get("/admin-kpis", controllers.GetAdminKPIs(svcs.Insights, logg))
		r.Get("/admin-map-data", controllers.GetAdminMapData(svcs.Insights, logg))

		r.Post("/chatbot", controllers.Chatbot(svcs.Chatbot, logg))
		r.Post("/categorize-description", controllers.CategorizeDescription(svcs.Categorize, logg))
	})

	return r
}
