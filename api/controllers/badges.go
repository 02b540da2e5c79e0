package controllers

import (
	"net/http"

	"github.com/recircle-platform/recircle-backend/api/responses"
	"github.com/recircle-platform/recircle-backend/api/validators"
	badgesvc "github.com/recircle-platform/recircle-backend/internal/badges"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

func GetBadges(svc badgesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partnerID, err := validators.ParseIDParam(r, "partner_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.ListForPartner(r.Context(), partnerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

func GetChallenges(svc badgesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partnerID, err := validators.ParseIDParam(r, "partner_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.Challenges(r.Context(), partnerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}
