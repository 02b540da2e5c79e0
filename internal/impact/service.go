package impact

import (
	"context"
	"fmt"

	"github.com/recircle-platform/recircle-backend/pkg/enums"
	pkgerrors "github.com/recircle-platform/recircle-backend/pkg/errors"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

// Conversion factors for the headline numbers. Every claimed unit keeps
// half a kilogram out of landfill, and each fulfilled claim feeds ten
// people.
const (
	WastePerUnitKG = 0.5
	PeoplePerClaim = 10
)

// PartnerImpact is the per-partner report.
type PartnerImpact struct {
	PartnerID       int64   `json:"partner_id"`
	PartnerName     string  `json:"partner_name"`
	ItemsClaimed    int64   `json:"items_claimed"`
	WasteDivertedKG float64 `json:"waste_diverted_kg"`
	PeopleHelped    int64   `json:"people_helped"`
	Points          int     `json:"points"`
}

// DashboardStats is the platform-wide rollup.
type DashboardStats struct {
	TotalItems         int64   `json:"total_items"`
	AvailableItems     int64   `json:"available_items"`
	ClaimedItems       int64   `json:"claimed_items"`
	TotalPartners      int64   `json:"total_partners"`
	TotalWasteDiverted float64 `json:"total_waste_diverted"`
	TotalPeopleHelped  int64   `json:"total_people_helped"`
}

// Service computes impact reports from the claim ledger.
type Service interface {
	PartnerImpact(ctx context.Context, partnerID int64) (*PartnerImpact, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("impact repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// PartnerImpact reports what a single partner's claims have added up to.
func (s *service) PartnerImpact(ctx context.Context, partnerID int64) (*PartnerImpact, error) {
	if partnerID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Partner not found")
	}

	partner, err := s.repo.FindPartner(ctx, partnerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading partner")
	}
	if partner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Partner not found")
	}

	claims, quantity, err := s.repo.ClaimTotals(ctx, partnerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregating claims")
	}

	return &PartnerImpact{
		PartnerID:       partner.ID,
		PartnerName:     partner.Name,
		ItemsClaimed:    claims,
		WasteDivertedKG: float64(quantity) * WastePerUnitKG,
		PeopleHelped:    claims * PeoplePerClaim,
		Points:          partner.Points,
	}, nil
}

// DashboardStats rolls the whole platform up into one snapshot.
func (s *service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalItems, err := s.repo.CountItems(ctx, "")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting items")
	}
	available, err := s.repo.CountItems(ctx, enums.ItemStatusAvailable)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting available items")
	}
	claimed, err := s.repo.CountItems(ctx, enums.ItemStatusClaimed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting claimed items")
	}
	partners, err := s.repo.CountPartners(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting partners")
	}
	claimedQuantity, err := s.repo.SumClaimedQuantity(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "summing claimed quantity")
	}

	return &DashboardStats{
		TotalItems:         totalItems,
		AvailableItems:     available,
		ClaimedItems:       claimed,
		TotalPartners:      partners,
		TotalWasteDiverted: float64(claimedQuantity) * WastePerUnitKG,
		TotalPeopleHelped:  claimed * PeoplePerClaim,
	}, nil
}
