package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a free-form label attached to users and events. Names are globally
// unique (case-sensitive) and rows are created lazily on first use, never
// deleted.
type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_tags_name"`
	CreatedAt time.Time `json:"created_at"`

	// Many-to-Many Relations
	Users  []*User  `json:"users,omitempty" gorm:"many2many:user_tags"`
	Events []*Event `json:"events,omitempty" gorm:"many2many:event_tags"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Interest is a label users pick during onboarding. Same lifecycle as Tag,
// kept as a separate table because users attach them independently.
type Interest struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_interests_name"`
	CreatedAt time.Time `json:"created_at"`

	// Many-to-Many Relations
	Users []*User `json:"users,omitempty" gorm:"many2many:user_interests"`
}

func (i *Interest) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
