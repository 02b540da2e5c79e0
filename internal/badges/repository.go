package badges

import (
	"context"

	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListForPartner returns a partner's badges, earned ones first.
func (r *Repository) ListForPartner(ctx context.Context, partnerID int64) ([]models.Badge, error) {
	var rows []models.Badge
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("earned DESC").
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
