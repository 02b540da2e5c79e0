package impact

import (
	"context"
	"errors"

	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"github.com/recircle-platform/recircle-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository reads the aggregates behind the impact reports. All queries
// are read-only; the claim workflow owns every write these numbers derive
// from.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindPartner returns the partner row, or nil when the id is unknown.
func (r *Repository) FindPartner(ctx context.Context, partnerID int64) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.WithContext(ctx).First(&partner, partnerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// ClaimTotals counts a partner's claims and sums the quantity of the
// items behind them.
func (r *Repository) ClaimTotals(ctx context.Context, partnerID int64) (claims int64, quantity int64, err error) {
	row := struct {
		Claims   int64
		Quantity int64
	}{}
	err = r.db.WithContext(ctx).
		Model(&models.Claim{}).
		Select("COUNT(claims.id) AS claims, COALESCE(SUM(items.quantity), 0) AS quantity").
		Joins("JOIN items ON items.id = claims.item_id").
		Where("claims.partner_id = ?", partnerID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Claims, row.Quantity, nil
}

// CountItems counts items, optionally restricted to a status.
func (r *Repository) CountItems(ctx context.Context, status enums.ItemStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Item{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountPartners counts every registered partner.
func (r *Repository) CountPartners(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Partner{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumClaimedQuantity sums the quantity across claimed items.
func (r *Repository) SumClaimedQuantity(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("status = ?", enums.ItemStatusClaimed).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
