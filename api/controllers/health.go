package controllers

import (
	"net/http"

	"github.com/recircle-platform/recircle-backend/api/responses"
	"github.com/recircle-platform/recircle-backend/pkg/config"
	"github.com/recircle-platform/recircle-backend/pkg/db"
	pkgerrors "github.com/recircle-platform/recircle-backend/pkg/errors"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
	pkgredis "github.com/recircle-platform/recircle-backend/pkg/redis"
)

// Health serves the original status endpoint consumed by the frontend.
func Health(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ReCircle-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{
			"status":  "healthy",
			"message": "ReCircle API is running",
		})
	}
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ReCircle-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every configured backend answers a
// ping. A nil redis client means redis was not configured and is skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbClient *db.Client, redisClient *pkgredis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ReCircle-Env", cfg.App.Env)

		if dbClient != nil {
			if err := dbClient.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "pinging database"))
				return
			}
		}
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "pinging redis"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
