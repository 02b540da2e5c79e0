package claims

import (
	"testing"

	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB spins up an in-memory SQLite store. The pool is capped at one
// connection so concurrent claim attempts serialize the way the production
// Postgres store would, instead of tripping SQLITE_BUSY.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := conn.AutoMigrate(&models.Item{}, &models.Partner{}, &models.Claim{}, &models.Badge{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return conn
}

func mustCreateItem(t *testing.T, conn *gorm.DB, quantity int) *models.Item {
	t.Helper()
	item := &models.Item{
		Category:    "Clothing",
		Description: "Winter coats",
		Location:    "Chicago, IL",
		Quantity:    quantity,
		Status:      "available",
	}
	if err := conn.Create(item).Error; err != nil {
		t.Fatalf("create item: %v", err)
	}
	return item
}

func mustCreatePartner(t *testing.T, conn *gorm.DB, points int) *models.Partner {
	t.Helper()
	partner := &models.Partner{
		Name:     "Community Aid",
		Location: "New York, NY",
		Points:   points,
	}
	if err := conn.Create(partner).Error; err != nil {
		t.Fatalf("create partner: %v", err)
	}
	return partner
}
