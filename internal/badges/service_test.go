package badges

import (
	"context"
	"testing"
	"time"

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
	if err := conn.AutoMigrate(&models.Badge{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	svc, err := NewService(NewRepository(conn), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, conn
}

func TestListForPartnerOrdersEarnedFirst(t *testing.T) {
	svc, conn := newTestService(t)
	earnedAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	seed := []models.Badge{
		{PartnerID: 1, Name: "Donation Champion", Description: "Donated 50+ items", Earned: false},
		{PartnerID: 1, Name: "Eco Hero", Description: "Achieved 100+ points", Earned: true, EarnedAt: &earnedAt},
		{PartnerID: 1, Name: "Community Star", Description: "Completed 5+ claims", Earned: true, EarnedAt: &earnedAt},
		{PartnerID: 2, Name: "Eco Hero", Description: "Achieved 100+ points", Earned: true, EarnedAt: &earnedAt},
	}
	for i := range seed {
		if err := conn.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	out, err := svc.ListForPartner(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 badges, got %d", len(out))
	}
	want := []string{"Community Star", "Eco Hero", "Donation Champion"}
	for i, name := range want {
		if out[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, out[i].Name)
		}
	}
	if !out[0].Earned || out[2].Earned {
		t.Fatal("expected earned badges ahead of pending ones")
	}
}

func TestListForPartnerUnknownPartnerIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.ListForPartner(context.Background(), 99)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no badges, got %d", len(out))
	}
}

func TestChallengesRoster(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Challenges(context.Background(), 1)
	if err != nil {
		t.Fatalf("challenges: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 challenges, got %d", len(out))
	}
	if out[0].Name != "Claim Champion" || out[0].Target != 10 || out[0].Progress != 5 {
		t.Fatalf("unexpected first challenge %+v", out[0])
	}
	if out[2].Name != "Eco Warrior" || out[2].Target != 1000 {
		t.Fatalf("unexpected last challenge %+v", out[2])
	}
}
