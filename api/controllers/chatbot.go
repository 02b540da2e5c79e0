package controllers

import (
	"net/http"

	"github.com/recircle-platform/recircle-backend/api/responses"
	"github.com/recircle-platform/recircle-backend/api/validators"
	chatbotsvc "github.com/recircle-platform/recircle-backend/internal/chatbot"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

type chatbotRequest struct {
	Message string `json:"message" validate:"required"`
}

func Chatbot(svc chatbotsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload chatbotRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reply, err := svc.Reply(r.Context(), payload.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"response": reply})
	}
}
