package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event represents an event in the directory. The host is fixed at creation
// and never reassigned.
type Event struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null;type:text"`
	StartsAt    time.Time `json:"date" gorm:"not null;index:idx_events_starts_at"`
	Location    string    `json:"location" gorm:"not null"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Category    string    `json:"category,omitempty" gorm:"index:idx_events_category"`
	Capacity    *int      `json:"capacity,omitempty"`
	HostID      uuid.UUID `json:"host_id" gorm:"not null;type:uuid;index:idx_events_host"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Foreign Key Relations
	Host *User `json:"host,omitempty" gorm:"foreignKey:HostID"`

	// Many-to-Many Relations
	Tags []*Tag `json:"tags,omitempty" gorm:"many2many:event_tags"`

	// One-to-Many Relations
	RSVPs []*RSVP `json:"rsvps,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// EventTag is the event/tag join row.
type EventTag struct {
	EventID   uuid.UUID `json:"event_id" gorm:"primaryKey;type:uuid"`
	TagID     uuid.UUID `json:"tag_id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
}
