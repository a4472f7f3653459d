package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RSVPStatus values observed from clients. The status column stores whatever
// string the caller sent; these are the two the app uses.
const (
	RSVPStatusInterested = "INTERESTED"
	RSVPStatusGoing      = "GOING"
)

// RSVP is a member's attendance response to one event. The composite unique
// index on (user_id, event_id) is what makes the upsert in the repository
// race-free: the database admits at most one row per pair.
type RSVP struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    uuid.UUID `json:"user_id" gorm:"not null;type:uuid;uniqueIndex:idx_rsvps_user_event"`
	EventID   uuid.UUID `json:"event_id" gorm:"not null;type:uuid;uniqueIndex:idx_rsvps_user_event"`
	Status    string    `json:"status" gorm:"not null;type:varchar(20)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Foreign Key Relations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (r *RSVP) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
