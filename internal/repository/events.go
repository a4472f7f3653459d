package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/newcity-hq/newcity-api/internal/models"
)

// EventFilter narrows a directory listing. Empty fields match everything;
// present fields combine conjunctively and compare exactly.
type EventFilter struct {
	City     string
	Category string
}

// EventRepository persists events and their tag associations.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts the event and attaches every named tag inside one
// transaction, so an event can never be committed with only part of its
// tags. The event comes back with host, rsvps and tags populated.
func (r *EventRepository) Create(ctx context.Context, event *models.Event, tagNames []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}

		for _, name := range tagNames {
			tag, err := GetOrCreateTag(tx, name)
			if err != nil {
				return err
			}
			link := models.EventTag{EventID: event.ID, TagID: tag.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Preload("Host").
		Preload("RSVPs.User").
		Preload("Tags").
		First(event, "id = ?", event.ID).Error
}

// GetByID fetches a single event without relations.
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns directory events ordered by start time ascending. The city
// filter applies to the HOST's city, which needs the join; category lives on
// the event row itself.
func (r *EventRepository) List(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	q := r.db.WithContext(ctx).Model(&models.Event{}).
		Preload("Host").
		Preload("RSVPs.User").
		Preload("Tags").
		Order("events.starts_at ASC")

	if filter.City != "" {
		q = q.Joins("JOIN users ON users.id = events.host_id").
			Where("users.city = ?", filter.City)
	}
	if filter.Category != "" {
		q = q.Where("events.category = ?", filter.Category)
	}

	var events []models.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
