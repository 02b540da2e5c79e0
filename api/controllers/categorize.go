package controllers

import (
	"net/http"

	"github.com/recircle-platform/recircle-backend/api/responses"
	"github.com/recircle-platform/recircle-backend/api/validators"
	categorizesvc "github.com/recircle-platform/recircle-backend/internal/categorize"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

type categorizeRequest struct {
	Description string `json:"description" validate:"required"`
}

func CategorizeDescription(svc categorizesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload categorizeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.Suggest(r.Context(), payload.Description)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"suggestedCategory": category})
	}
}
