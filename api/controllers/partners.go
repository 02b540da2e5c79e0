package controllers

import (
	"net/http"

	"github.com/recircle-platform/recircle-backend/api/responses"
	partnersvc "github.com/recircle-platform/recircle-backend/internal/partners"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

// GetPartners returns the leaderboard, highest points first.
func GetPartners(svc partnersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Leaderboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
