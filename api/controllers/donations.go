package controllers

import (
	"net/http"

	"github.com/recircle-platform/recircle-backend/api/responses"
	"github.com/recircle-platform/recircle-backend/api/validators"
	listingsvc "github.com/recircle-platform/recircle-backend/internal/listings"
	pkgerrors "github.com/recircle-platform/recircle-backend/pkg/errors"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

type createDonationRequest struct {
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Source      string `json:"source,omitempty"`
}

type donationResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DonationID int64  `json:"donation_id"`
}

// CreateDonation is the public intake form: it registers an item like a
// listing but answers with a confirmation instead of the row.
func CreateDonation(svc listingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listing service unavailable"))
			return
		}

		var payload createDonationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		source := payload.Source
		if source == "" {
			source = "customer"
		}

		item, err := svc.Create(r.Context(), listingsvc.CreateInput{
			Category:    payload.Category,
			Description: payload.Description,
			Location:    payload.Location,
			Quantity:    payload.Quantity,
			Source:      source,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, donationResponse{
			Success:    true,
			Message:    "Donation created successfully",
			DonationID: item.ID,
		})
	}
}

// GetDonations lists every item in creation order, newest first.
func GetDonations(svc listingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByCreation(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}
