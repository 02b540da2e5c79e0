package partners

import (
	"context"
	"errors"

	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByPoints returns every partner, highest score first.
func (r *Repository) ListByPoints(ctx context.Context) ([]models.Partner, error) {
	var rows []models.Partner
	err := r.db.WithContext(ctx).
		Order("points DESC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByUsername looks a partner up by login name, nil when unknown.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&partner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}
