package listings

import (
	"context"

	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Filters narrows a listing query. Empty fields are ignored; provided fields
// combine with AND.
type Filters struct {
	Category string
	Location string
	Status   string
}

// Repository defines persistence for surplus-item listings.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateItem inserts the listing and fills in its generated identifier.
func (r *Repository) CreateItem(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// ListItems returns items matching all provided filters, newest first.
func (r *Repository) ListItems(ctx context.Context, filters Filters) ([]models.Item, error) {
	query := r.db.WithContext(ctx).Model(&models.Item{})
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Location != "" {
		query = query.Where("location = ?", filters.Location)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	var items []models.Item
	if err := query.Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByCreation returns every item ordered by creation time, newest first.
func (r *Repository) ListByCreation(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DistinctCategories returns all categories present in the store, sorted.
func (r *Repository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// DistinctLocations returns all locations present in the store, sorted.
func (r *Repository) DistinctLocations(ctx context.Context) ([]string, error) {
	var locations []string
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Distinct("location").
		Order("location").
		Pluck("location", &locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
