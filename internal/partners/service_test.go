package partners

import (
	"context"
	"testing"

	"github.com/recircle-platform/recircle-backend/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
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
	if err := conn.AutoMigrate(&models.Partner{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	svc, err := NewService(NewRepository(conn), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, conn
}

func TestLeaderboardOrdersByPointsDescending(t *testing.T) {
	svc, conn := newTestService(t)

	seed := []models.Partner{
		{Name: "Eco Warriors", Location: "Chicago, IL", Points: 750},
		{Name: "Community Aid", Location: "New York, NY", Points: 1250},
		{Name: "Recycle Heroes", Location: "Phoenix, AZ", Points: 450},
	}
	for i := range seed {
		if err := conn.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rows, err := svc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 partners, got %d", len(rows))
	}
	want := []string{"Community Aid", "Eco Warriors", "Recycle Heroes"}
	for i, name := range want {
		if rows[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, rows[i].Name)
		}
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	rows, err := svc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty leaderboard, got %d rows", len(rows))
	}
}

func TestFindByUsername(t *testing.T) {
	_, conn := newTestService(t)
	repo := NewRepository(conn)

	partner := models.Partner{Name: "Community Aid", Location: "New York, NY", Username: "ngo1"}
	if err := conn.Create(&partner).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	found, err := repo.FindByUsername(context.Background(), "ngo1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.Name != "Community Aid" {
		t.Fatalf("unexpected result %+v", found)
	}

	missing, err := repo.FindByUsername(context.Background(), "ngo9")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown username, got %+v", missing)
	}
}
