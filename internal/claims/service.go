package claims

import (
	"context"
	"fmt"

	"github.com/recircle-platform/recircle-backend/pkg/db"
	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"github.com/recircle-platform/recircle-backend/pkg/enums"
	pkgerrors "github.com/recircle-platform/recircle-backend/pkg/errors"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
	"github.com/recircle-platform/recircle-backend/pkg/metrics"
	"gorm.io/gorm"
)

// PointsPerClaim is the fixed award credited to a partner per successful claim.
const PointsPerClaim = 10

// Result carries the recorded claim plus the confirmation returned to callers.
type Result struct {
	Claim   *models.Claim
	Status  enums.ItemStatus
	Message string
}

// Service is the claim engine: it transitions an item from available to
// claimed, records the claim, and credits the partner's points, all in one
// transaction.
type Service interface {
	Claim(ctx context.Context, itemID, partnerID int64) (*Result, error)
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	logg     *logger.Logger
	metrics  *metrics.ClaimMetrics
}

// NewService constructs the claim engine.
func NewService(repo *Repository, dbClient *db.Client, logg *logger.Logger, claimMetrics *metrics.ClaimMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("claims repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient, logg: logg, metrics: claimMetrics}, nil
}

// Claim performs the available→claimed transition. The status flip is an
// atomic conditional update, so two racing claimers cannot both win: the
// loser's update matches zero rows and is rejected without side effects.
func (s *service) Claim(ctx context.Context, itemID, partnerID int64) (*Result, error) {
	if itemID <= 0 {
		return nil, s.reject("not_found", pkgerrors.New(pkgerrors.CodeNotFound, "Item not found"))
	}
	if partnerID <= 0 {
		return nil, s.reject("not_found", pkgerrors.New(pkgerrors.CodeNotFound, "Partner not found"))
	}

	claim := &models.Claim{ItemID: itemID, PartnerID: partnerID}

	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		updated, err := repo.MarkItemClaimed(ctx, itemID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating item status")
		}
		if !updated {
			item, findErr := repo.FindItem(ctx, itemID)
			if findErr != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, findErr, "loading item")
			}
			if item == nil {
				return pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
			}
			return pkgerrors.New(pkgerrors.CodeStateConflict, "Item is not available")
		}

		if err := repo.CreateClaim(ctx, claim); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording claim")
		}

		credited, err := repo.CreditPartnerPoints(ctx, partnerID, PointsPerClaim)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "crediting points")
		}
		if !credited {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Partner not found")
		}

		return nil
	})
	if err != nil {
		outcome := "error"
		if typed := pkgerrors.As(err); typed != nil {
			switch typed.Code() {
			case pkgerrors.CodeNotFound:
				outcome = "not_found"
			case pkgerrors.CodeStateConflict:
				outcome = "conflict"
			}
		}
		return nil, s.reject(outcome, err)
	}

	s.metrics.IncOutcome("claimed")
	if s.logg != nil {
		logCtx := s.logg.WithItemID(ctx, itemID)
		logCtx = s.logg.WithPartnerID(logCtx, partnerID)
		s.logg.Info(logCtx, "item claimed")
	}

	return &Result{
		Claim:   claim,
		Status:  enums.ItemStatusClaimed,
		Message: "Item claimed successfully",
	}, nil
}

func (s *service) reject(outcome string, err error) error {
	s.metrics.IncOutcome(outcome)
	return err
}
