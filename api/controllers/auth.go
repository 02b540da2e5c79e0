package controllers

import (
	"net/http"

	"github.com/recircle-platform/recircle-backend/api/responses"
	"github.com/recircle-platform/recircle-backend/api/validators"
	authsvc "github.com/recircle-platform/recircle-backend/internal/auth"
	pkgerrors "github.com/recircle-platform/recircle-backend/pkg/errors"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges partner credentials for a session token.
func Login(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), payload.Username, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
