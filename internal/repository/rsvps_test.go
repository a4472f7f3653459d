package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/newcity-hq/newcity-api/internal/models"
)

func TestRSVPUpsertReconciles(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewRSVPRepository(db)

	user := createTestUser(t, db, "ext-1", "Uma", "Austin", nil, nil)
	host := createTestUser(t, db, "ext-host", "Harper", "Austin", nil, nil)
	event := createTestEvent(t, db, host, "Picnic", "", time.Now().Add(24*time.Hour), nil)

	t.Run("first response creates the row", func(t *testing.T) {
		rsvp, created, err := repo.Upsert(ctx, user.ID, event.ID, models.RSVPStatusInterested)
		if err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		if !created {
			t.Errorf("created got = false, want true")
		}
		if rsvp.Status != models.RSVPStatusInterested {
			t.Errorf("status got = %v, want %v", rsvp.Status, models.RSVPStatusInterested)
		}
		if rsvp.User == nil || rsvp.User.ID != user.ID {
			t.Errorf("rsvp user relation not populated")
		}
		if rsvp.Event == nil || rsvp.Event.ID != event.ID {
			t.Errorf("rsvp event relation not populated")
		}
	})

	t.Run("status change overwrites in place", func(t *testing.T) {
		rsvp, created, err := repo.Upsert(ctx, user.ID, event.ID, models.RSVPStatusGoing)
		if err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		if created {
			t.Errorf("created got = true, want false")
		}
		if rsvp.Status != models.RSVPStatusGoing {
			t.Errorf("status got = %v, want %v", rsvp.Status, models.RSVPStatusGoing)
		}

		var count int64
		if err := db.Model(&models.RSVP{}).Where("user_id = ? AND event_id = ?", user.ID, event.ID).Count(&count).Error; err != nil {
			t.Fatalf("count error = %v", err)
		}
		if count != 1 {
			t.Errorf("row count got = %d, want 1", count)
		}
	})
}

func TestRSVPConcurrentUpsertsSingleRow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewRSVPRepository(db)

	user := createTestUser(t, db, "ext-1", "Uma", "Austin", nil, nil)
	host := createTestUser(t, db, "ext-host", "Harper", "Austin", nil, nil)
	event := createTestEvent(t, db, host, "Picnic", "", time.Now().Add(24*time.Hour), nil)

	const n = 16
	statuses := make([]string, n)
	for i := range statuses {
		statuses[i] = fmt.Sprintf("STATUS_%d", i)
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for _, status := range statuses {
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			if _, _, err := repo.Upsert(ctx, user.ID, event.ID, status); err != nil {
				errs <- err
			}
		}(status)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent Upsert() error = %v", err)
	}

	var rows []models.RSVP
	if err := db.Where("user_id = ? AND event_id = ?", user.ID, event.ID).Find(&rows).Error; err != nil {
		t.Fatalf("find error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("row count got = %d, want 1", len(rows))
	}

	final := rows[0].Status
	known := false
	for _, status := range statuses {
		if status == final {
			known = true
			break
		}
	}
	if !known {
		t.Errorf("final status %q is not one of the submitted statuses", final)
	}
}

func TestRSVPDeleteThenRecreate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewRSVPRepository(db)

	user := createTestUser(t, db, "ext-1", "Uma", "Austin", nil, nil)
	host := createTestUser(t, db, "ext-host", "Harper", "Austin", nil, nil)
	event := createTestEvent(t, db, host, "Picnic", "", time.Now().Add(24*time.Hour), nil)

	if _, _, err := repo.Upsert(ctx, user.ID, event.ID, models.RSVPStatusGoing); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := repo.Delete(ctx, user.ID, event.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var count int64
	if err := db.Model(&models.RSVP{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count error = %v", err)
	}
	if count != 0 {
		t.Errorf("row count after delete got = %d, want 0", count)
	}

	if err := repo.Delete(ctx, user.ID, event.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second Delete() error = %v, want gorm.ErrRecordNotFound", err)
	}

	rsvp, created, err := repo.Upsert(ctx, user.ID, event.ID, models.RSVPStatusInterested)
	if err != nil {
		t.Fatalf("Upsert() after delete error = %v", err)
	}
	if !created {
		t.Errorf("created got = false, want true after delete")
	}
	if rsvp.Status != models.RSVPStatusInterested {
		t.Errorf("status got = %v, want %v (no residual status)", rsvp.Status, models.RSVPStatusInterested)
	}
}
