package partners

import (
	"context"
	"fmt"

	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	pkgerrors "github.com/recircle-platform/recircle-backend/pkg/errors"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

// Service serves the partner leaderboard.
type Service interface {
	Leaderboard(ctx context.Context) ([]models.Partner, error)
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("partners repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) Leaderboard(ctx context.Context) ([]models.Partner, error) {
	rows, err := s.repo.ListByPoints(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing partners")
	}
	return rows, nil
}
