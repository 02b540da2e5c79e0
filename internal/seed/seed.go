package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/recircle-platform/recircle-backend/pkg/config"
	"github.com/recircle-platform/recircle-backend/pkg/db"
	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"github.com/recircle-platform/recircle-backend/pkg/enums"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
	"github.com/recircle-platform/recircle-backend/pkg/security"
	"gorm.io/gorm"
)

// DemoPassword is the shared credential for the demo partner accounts.
const DemoPassword = "test"

// Seeder loads the demo dataset on first boot. Seeding is idempotent:
// if any partner already exists the run is a no-op.
type Seeder struct {
	db   *db.Client
	cfg  config.PasswordConfig
	logg *logger.Logger
}

func New(client *db.Client, cfg config.PasswordConfig, logg *logger.Logger) (*Seeder, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &Seeder{db: client, cfg: cfg, logg: logg}, nil
}

// Run populates partners, items, badges and claims inside one
// transaction.
func (s *Seeder) Run(ctx context.Context) error {
	var partnerCount int64
	if err := s.db.DB().WithContext(ctx).Model(&models.Partner{}).Count(&partnerCount).Error; err != nil {
		return fmt.Errorf("counting partners: %w", err)
	}
	if partnerCount > 0 {
		if s.logg != nil {
			s.logg.Info(ctx, "sample data already present, skipping seed")
		}
		return nil
	}

	hash, err := security.HashPassword(DemoPassword, s.cfg)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		partners := samplePartners(hash)
		for i := range partners {
			if err := tx.Create(&partners[i]).Error; err != nil {
				return fmt.Errorf("seeding partner %s: %w", partners[i].Name, err)
			}
		}

		items := sampleItems()
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return fmt.Errorf("seeding item %d: %w", i+1, err)
			}
		}

		for _, badge := range sampleBadges(partners) {
			if err := tx.Create(&badge).Error; err != nil {
				return fmt.Errorf("seeding badge %s: %w", badge.Name, err)
			}
		}

		for _, claim := range sampleClaims(items, partners) {
			if err := tx.Create(&claim).Error; err != nil {
				return fmt.Errorf("seeding claim for item %d: %w", claim.ItemID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.logg != nil {
		s.logg.Info(ctx, "sample data seeded")
	}
	return nil
}

func samplePartners(passwordHash string) []models.Partner {
	partners := []models.Partner{
		{Name: "Community Aid", Location: "New York, NY", Points: 1250, Username: "ngo1"},
		{Name: "Green Cycle", Location: "Los Angeles, CA", Points: 980, Username: "ngo2"},
		{Name: "Eco Warriors", Location: "Chicago, IL", Points: 750, Username: "ngo3"},
		{Name: "Sustainable Future", Location: "Houston, TX", Points: 620, Username: "ngo4"},
		{Name: "Recycle Heroes", Location: "Phoenix, AZ", Points: 450, Username: "ngo5"},
	}
	for i := range partners {
		partners[i].PasswordHash = passwordHash
	}
	return partners
}

func sampleItems() []models.Item {
	available := []models.Item{
		{Category: "Clothing", Description: "Men's shirts - Various sizes, good condition", Location: "New York, NY", Quantity: 50},
		{Category: "Electronics", Description: "Laptops - Dell and HP, working condition", Location: "Los Angeles, CA", Quantity: 10},
		{Category: "Food", Description: "Canned goods - Vegetables, fruits, and beans", Location: "Chicago, IL", Quantity: 100},
		{Category: "Furniture", Description: "Office chairs - Ergonomic, like new", Location: "Houston, TX", Quantity: 15},
		{Category: "Clothing", Description: "Women's dresses - Summer collection", Location: "Phoenix, AZ", Quantity: 25},
		{Category: "Electronics", Description: "Tablets - iPads and Android tablets", Location: "New York, NY", Quantity: 8},
		{Category: "Food", Description: "Rice and pasta - Bulk quantities", Location: "Los Angeles, CA", Quantity: 200},
		{Category: "Furniture", Description: "Desks - Wooden, various sizes", Location: "Chicago, IL", Quantity: 12},
		{Category: "Clothing", Description: "Children's clothes - All ages", Location: "Houston, TX", Quantity: 75},
		{Category: "Electronics", Description: "Smartphones - Various brands", Location: "Phoenix, AZ", Quantity: 5},
		{Category: "Food", Description: "Baby food and formula", Location: "New York, NY", Quantity: 150},
		{Category: "Furniture", Description: "Bookshelves - Metal and wood", Location: "Los Angeles, CA", Quantity: 20},
		{Category: "Clothing", Description: "Winter coats and jackets", Location: "Chicago, IL", Quantity: 40},
		{Category: "Electronics", Description: "Monitors - 24-inch and 27-inch", Location: "Houston, TX", Quantity: 6},
		{Category: "Food", Description: "Snack foods and beverages", Location: "Phoenix, AZ", Quantity: 300},
	}
	claimed := []models.Item{
		{Category: "Clothing", Description: "Shoes - Athletic and casual", Location: "New York, NY", Quantity: 30},
		{Category: "Electronics", Description: "Printers - Laser and inkjet", Location: "Los Angeles, CA", Quantity: 4},
		{Category: "Food", Description: "Cereal and breakfast items", Location: "Chicago, IL", Quantity: 80},
		{Category: "Furniture", Description: "Sofas and couches", Location: "Houston, TX", Quantity: 3},
		{Category: "Clothing", Description: "Professional attire", Location: "Phoenix, AZ", Quantity: 35},
	}

	items := make([]models.Item, 0, len(available)+len(claimed))
	for _, item := range available {
		item.Status = enums.ItemStatusAvailable
		items = append(items, item)
	}
	for _, item := range claimed {
		item.Status = enums.ItemStatusClaimed
		items = append(items, item)
	}
	return items
}

func sampleBadges(partners []models.Partner) []models.Badge {
	earnedAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	nextDay := earnedAt.AddDate(0, 0, 1)
	return []models.Badge{
		{PartnerID: partners[0].ID, Name: "Eco Hero", Description: "Achieved 100+ points", Earned: true, EarnedAt: &earnedAt},
		{PartnerID: partners[0].ID, Name: "Community Star", Description: "Completed 5+ claims", Earned: true, EarnedAt: &nextDay},
		{PartnerID: partners[0].ID, Name: "Donation Champion", Description: "Donated 50+ items", Earned: false},
		{PartnerID: partners[1].ID, Name: "Eco Hero", Description: "Achieved 100+ points", Earned: true, EarnedAt: &earnedAt},
		{PartnerID: partners[1].ID, Name: "Community Star", Description: "Completed 5+ claims", Earned: false},
		{PartnerID: partners[2].ID, Name: "Eco Hero", Description: "Achieved 100+ points", Earned: false},
	}
}

// sampleClaims ties the five pre-claimed items to the partners that took
// them.
func sampleClaims(items []models.Item, partners []models.Partner) []models.Claim {
	takers := []int{0, 1, 0, 2, 1}
	claims := make([]models.Claim, 0, len(takers))
	for i, taker := range takers {
		item := items[len(items)-len(takers)+i]
		claims = append(claims, models.Claim{ItemID: item.ID, PartnerID: partners[taker].ID})
	}
	return claims
}
