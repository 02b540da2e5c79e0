package claims

import (
	"context"
	"errors"

	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"github.com/recircle-platform/recircle-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository owns the claim engine's writes. Every mutating method is meant
// to run on a transaction handle so the caller controls atomicity.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// MarkItemClaimed flips the item from available to claimed as one atomic
// conditional update. The updated-row count is the success signal: updated ==
// false means the item is either missing or already claimed, which the caller
// disambiguates with FindItem.
func (r *Repository) MarkItemClaimed(ctx context.Context, itemID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ? AND status = ?", itemID, enums.ItemStatusAvailable).
		Update("status", enums.ItemStatusClaimed)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindItem loads the item row, nil when absent.
func (r *Repository) FindItem(ctx context.Context, itemID int64) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// CreateClaim inserts the claim record.
func (r *Repository) CreateClaim(ctx context.Context, claim *models.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

// CreditPartnerPoints adds the award to the partner's accumulator. Returns
// false when no partner row matched.
func (r *Repository) CreditPartnerPoints(ctx context.Context, partnerID int64, points int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Partner{}).
		Where("id = ?", partnerID).
		Update("points", gorm.Expr("points + ?", points))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountForItem reports how many claim rows reference the item.
func (r *Repository) CountForItem(ctx context.Context, itemID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Claim{}).
		Where("item_id = ?", itemID).
		Count(&count).Error
	return count, err
}
