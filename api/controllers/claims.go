package controllers

import (
	"net/http"

	"github.com/recircle-platform/recircle-backend/api/responses"
	"github.com/recircle-platform/recircle-backend/api/validators"
	claimsvc "github.com/recircle-platform/recircle-backend/internal/claims"
	pkgerrors "github.com/recircle-platform/recircle-backend/pkg/errors"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

type claimRequest struct {
	ItemID    int64 `json:"item_id" validate:"required,gt=0"`
	PartnerID int64 `json:"partner_id" validate:"required,gt=0"`
}

type claimResponse struct {
	ItemID    int64  `json:"item_id"`
	PartnerID int64  `json:"partner_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// ClaimItem runs the claim workflow for an available item.
func ClaimItem(svc claimsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "claim service unavailable"))
			return
		}

		var payload claimRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Claim(r.Context(), payload.ItemID, payload.PartnerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, claimResponse{
			ItemID:    result.Claim.ItemID,
			PartnerID: result.Claim.PartnerID,
			Status:    string(result.Status),
			Message:   result.Message,
		})
	}
}
