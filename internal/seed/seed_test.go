package seed

import (
	"context"
	"testing"

	"github.com/recircle-platform/recircle-backend/pkg/config"
	"github.com/recircle-platform/recircle-backend/pkg/db"
	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"github.com/recircle-platform/recircle-backend/pkg/enums"
	"github.com/recircle-platform/recircle-backend/pkg/security"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testPasswordCfg = config.PasswordConfig{
	ArgonMemoryKB:    8192,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

func newTestSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := conn.AutoMigrate(&models.Item{}, &models.Partner{}, &models.Claim{}, &models.Badge{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	seeder, err := New(db.FromConn(conn), testPasswordCfg, nil)
	if err != nil {
		t.Fatalf("new seeder: %v", err)
	}
	return seeder, conn
}

func TestRunSeedsSampleData(t *testing.T) {
	seeder, conn := newTestSeeder(t)

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var partnerCount, itemCount, badgeCount, claimCount int64
	conn.Model(&models.Partner{}).Count(&partnerCount)
	conn.Model(&models.Item{}).Count(&itemCount)
	conn.Model(&models.Badge{}).Count(&badgeCount)
	conn.Model(&models.Claim{}).Count(&claimCount)
	if partnerCount != 5 || itemCount != 20 || badgeCount != 6 || claimCount != 5 {
		t.Fatalf("unexpected row counts: partners=%d items=%d badges=%d claims=%d",
			partnerCount, itemCount, badgeCount, claimCount)
	}

	var claimed int64
	conn.Model(&models.Item{}).Where("status = ?", enums.ItemStatusClaimed).Count(&claimed)
	if claimed != 5 {
		t.Fatalf("expected 5 pre-claimed items, got %d", claimed)
	}

	var top models.Partner
	if err := conn.Order("points DESC").First(&top).Error; err != nil {
		t.Fatalf("load top partner: %v", err)
	}
	if top.Name != "Community Aid" || top.Points != 1250 {
		t.Fatalf("unexpected top partner %+v", top)
	}

	ok, err := security.VerifyPassword(DemoPassword, top.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("demo credentials must verify, ok=%v err=%v", ok, err)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	seeder, conn := newTestSeeder(t)

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var partnerCount, itemCount int64
	conn.Model(&models.Partner{}).Count(&partnerCount)
	conn.Model(&models.Item{}).Count(&itemCount)
	if partnerCount != 5 || itemCount != 20 {
		t.Fatalf("reseeding must not duplicate rows: partners=%d items=%d", partnerCount, itemCount)
	}
}
