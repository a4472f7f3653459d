package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/newcity-hq/newcity-api/internal/models"
)

// setupTestDB opens a per-test in-memory database. Shared cache keeps the
// database alive across pool connections; a single open connection keeps
// concurrent tests serialized the way the store would serialize them.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, clerkID, name, city string, interests, tags []string) *models.User {
	t.Helper()

	repo := NewUserRepository(db)
	user := &models.User{
		ClerkID: clerkID,
		Email:   clerkID + "@example.com",
		Name:    name,
		City:    city,
	}
	if err := repo.Create(context.Background(), user, interests, tags); err != nil {
		t.Fatalf("Failed to create test user %s: %v", clerkID, err)
	}
	return user
}

func createTestEvent(t *testing.T, db *gorm.DB, host *models.User, title, category string, startsAt time.Time, tags []string) *models.Event {
	t.Helper()

	repo := NewEventRepository(db)
	event := &models.Event{
		Title:       title,
		Description: "test event",
		StartsAt:    startsAt,
		Location:    "Test Location",
		Category:    category,
		HostID:      host.ID,
	}
	if err := repo.Create(context.Background(), event, tags); err != nil {
		t.Fatalf("Failed to create test event %s: %v", title, err)
	}
	return event
}
