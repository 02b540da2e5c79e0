package listings

import (
	"context"
	"fmt"
	"strings"

	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"github.com/recircle-platform/recircle-backend/pkg/enums"
	pkgerrors "github.com/recircle-platform/recircle-backend/pkg/errors"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

// CreateInput holds the validated payload to create a listing.
type CreateInput struct {
	Category    string
	Description string
	Location    string
	Quantity    int
	// Source tags where the donation came from ("customer", "partner", …).
	// Logged only; the original platform never stored it.
	Source string
}

// Service exposes the item registry operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Item, error)
	List(ctx context.Context, filters Filters) ([]models.Item, error)
	ListByCreation(ctx context.Context) ([]models.Item, error)
	Categories(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

// NewService constructs the item registry.
func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("listings repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// Create validates the listing and persists it with status available.
// Validation runs before any write: a rejected listing leaves no row behind.
func (s *service) Create(ctx context.Context, input CreateInput) (*models.Item, error) {
	input.Category = strings.TrimSpace(input.Category)
	input.Description = strings.TrimSpace(input.Description)
	input.Location = strings.TrimSpace(input.Location)

	details := map[string]string{}
	if input.Category == "" {
		details["category"] = "is required"
	}
	if input.Description == "" {
		details["description"] = "is required"
	}
	if input.Location == "" {
		details["location"] = "is required"
	}
	if input.Quantity <= 0 {
		details["quantity"] = "must be greater than 0"
	}
	if len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}

	item := &models.Item{
		Category:    input.Category,
		Description: input.Description,
		Location:    input.Location,
		Quantity:    input.Quantity,
		Status:      enums.ItemStatusAvailable,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting listing")
	}

	if s.logg != nil {
		fields := map[string]any{
			"item_id":     item.ID,
			"category":    item.Category,
			"location":    item.Location,
			"description": item.Description,
		}
		if input.Source != "" {
			fields["source"] = input.Source
		}
		s.logg.Info(s.logg.WithFields(ctx, fields), "new item available")
	}

	return item, nil
}

// List returns listings matching the provided filters, newest first.
func (s *service) List(ctx context.Context, filters Filters) ([]models.Item, error) {
	if filters.Status != "" {
		if _, err := enums.ParseItemStatus(filters.Status); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
	}
	items, err := s.repo.ListItems(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing items")
	}
	return items, nil
}

// ListByCreation returns the donation feed ordered by creation time.
func (s *service) ListByCreation(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.ListByCreation(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing donations")
	}
	return items, nil
}

// Categories returns the distinct categories present in the store.
func (s *service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing categories")
	}
	return categories, nil
}

// Locations returns the distinct locations present in the store.
func (s *service) Locations(ctx context.Context) ([]string, error) {
	locations, err := s.repo.DistinctLocations(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing locations")
	}
	return locations, nil
}
