package repository

import (
	"context"
	"testing"
	"time"

	"github.com/newcity-hq/newcity-api/internal/models"
)

func TestEventTagsSharedAcrossEvents(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(db)

	host := createTestUser(t, db, "ext-host", "Harper", "Austin", nil, nil)
	createTestEvent(t, db, host, "Hike", "", time.Now().Add(24*time.Hour), []string{"A", "B"})
	createTestEvent(t, db, host, "Climb", "", time.Now().Add(48*time.Hour), []string{"B", "C"})

	var count int64
	if err := db.Model(&models.Tag{}).Where("name = ?", "B").Count(&count).Error; err != nil {
		t.Fatalf("count error = %v", err)
	}
	if count != 1 {
		t.Fatalf("tag %q row count got = %d, want 1", "B", count)
	}

	events, err := repo.List(ctx, EventFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, event := range events {
		names := map[string]bool{}
		for _, tag := range event.Tags {
			names[tag.Name] = true
		}
		if !names["B"] {
			t.Errorf("event %q missing shared tag B", event.Title)
		}
	}
}

func TestListFiltersAndOrdering(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(db)

	austin := createTestUser(t, db, "ext-austin", "Uma", "Austin", nil, nil)
	denver := createTestUser(t, db, "ext-denver", "Dana", "Denver", nil, nil)

	base := time.Now().Add(24 * time.Hour)
	createTestEvent(t, db, austin, "Later Austin", "music", base.Add(2*time.Hour), nil)
	createTestEvent(t, db, austin, "Early Austin", "food", base, nil)
	createTestEvent(t, db, denver, "Denver Food", "food", base.Add(time.Hour), nil)

	t.Run("no filter returns all ascending by start", func(t *testing.T) {
		events, err := repo.List(ctx, EventFilter{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("event count got = %d, want 3", len(events))
		}
		for i := 1; i < len(events); i++ {
			if events[i].StartsAt.Before(events[i-1].StartsAt) {
				t.Errorf("events not ordered ascending: %q before %q", events[i].Title, events[i-1].Title)
			}
		}
	})

	t.Run("city filter matches host city exactly", func(t *testing.T) {
		events, err := repo.List(ctx, EventFilter{City: "Austin"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("event count got = %d, want 2", len(events))
		}
		for _, event := range events {
			if event.Host == nil || event.Host.City != "Austin" {
				t.Errorf("event %q host city is not Austin", event.Title)
			}
		}
	})

	t.Run("filters combine conjunctively", func(t *testing.T) {
		events, err := repo.List(ctx, EventFilter{City: "Austin", Category: "food"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(events) != 1 || events[0].Title != "Early Austin" {
			t.Fatalf("events got = %v, want only Early Austin", titles(events))
		}
	})

	t.Run("unknown city matches nothing", func(t *testing.T) {
		events, err := repo.List(ctx, EventFilter{City: "austin"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(events) != 0 {
			t.Errorf("city match must be exact, got %v", titles(events))
		}
	})
}

func TestListReflectsAttendance(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	events := NewEventRepository(db)
	rsvps := NewRSVPRepository(db)

	host := createTestUser(t, db, "ext-host", "Harper", "Austin", nil, nil)
	guest := createTestUser(t, db, "ext-1", "Uma", "Austin", nil, nil)
	event := createTestEvent(t, db, host, "Picnic", "", time.Now().Add(24*time.Hour), nil)

	if _, _, err := rsvps.Upsert(ctx, guest.ID, event.ID, models.RSVPStatusGoing); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	listed, err := events.List(ctx, EventFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listed) != 1 || len(listed[0].RSVPs) != 1 {
		t.Fatalf("attendee count got = %d, want 1", len(listed[0].RSVPs))
	}
	if listed[0].RSVPs[0].User == nil || listed[0].RSVPs[0].User.Name != "Uma" {
		t.Errorf("attendee summary not populated")
	}

	if err := rsvps.Delete(ctx, guest.ID, event.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	listed, err = events.List(ctx, EventFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listed[0].RSVPs) != 0 {
		t.Errorf("attendee count after removal got = %d, want 0", len(listed[0].RSVPs))
	}
}

func titles(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Title
	}
	return out
}
