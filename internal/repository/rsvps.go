package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/newcity-hq/newcity-api/internal/models"
)

// RSVPRepository reconciles attendance responses. All writes go through a
// single conditional upsert keyed on (user_id, event_id): the composite
// unique index guarantees at most one row per pair no matter how many
// requests race, with the last committed status winning.
type RSVPRepository struct {
	db *gorm.DB
}

func NewRSVPRepository(db *gorm.DB) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// Upsert records or overwrites the user's response to an event and returns
// the row with its user and event relations populated. The returned bool
// reports whether this call created the row; it is read before the upsert
// and only decides the HTTP status, never correctness.
func (r *RSVPRepository) Upsert(ctx context.Context, userID, eventID uuid.UUID, status string) (*models.RSVP, bool, error) {
	var existing int64
	err := r.db.WithContext(ctx).Model(&models.RSVP{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&existing).Error
	if err != nil {
		return nil, false, err
	}

	candidate := models.RSVP{UserID: userID, EventID: eventID, Status: status}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&candidate).Error
	if err != nil {
		return nil, false, err
	}

	// Re-read by the pair key: on conflict the surviving row keeps its
	// original id, not the candidate's.
	var rsvp models.RSVP
	err = r.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&rsvp).Error
	if err != nil {
		return nil, false, err
	}

	return &rsvp, existing == 0, nil
}

// Delete removes the user's response to an event. Reports
// gorm.ErrRecordNotFound if no row existed for the pair.
func (r *RSVPRepository) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.RSVP{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
