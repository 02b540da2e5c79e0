package badges

import (
	"context"
	"fmt"

	pkgerrors "github.com/recircle-platform/recircle-backend/pkg/errors"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

// Badge is the public shape of an earned (or pending) award.
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// Challenge is a gamified target with progress toward it.
type Challenge struct {
	Name        string `json:"name"`
	Target      int    `json:"target"`
	Progress    int    `json:"progress"`
	Description string `json:"description"`
}

// Service lists badges and the active challenge set.
type Service interface {
	ListForPartner(ctx context.Context, partnerID int64) ([]Badge, error)
	Challenges(ctx context.Context, partnerID int64) ([]Challenge, error)
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("badges repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) ListForPartner(ctx context.Context, partnerID int64) ([]Badge, error) {
	rows, err := s.repo.ListForPartner(ctx, partnerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing badges")
	}
	out := make([]Badge, 0, len(rows))
	for _, row := range rows {
		out = append(out, Badge{Name: row.Name, Description: row.Description, Earned: row.Earned})
	}
	return out, nil
}

// Challenges returns the current challenge roster. The roster is fixed
// for every partner until per-partner progress tracking lands.
func (s *service) Challenges(ctx context.Context, partnerID int64) ([]Challenge, error) {
	return []Challenge{
		{Name: "Claim Champion", Target: 10, Progress: 5, Description: "Claim 10 items this month"},
		{Name: "Monthly Donor", Target: 5, Progress: 3, Description: "Donate 5 items this month"},
		{Name: "Eco Warrior", Target: 1000, Progress: 750, Description: "Earn 1000 points"},
	}, nil
}
