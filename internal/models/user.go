package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an onboarded member. ClerkID is the subject id issued by
// the external identity provider and is the only link between a session and
// a row in this table.
type User struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	ClerkID    string    `json:"clerkId" gorm:"not null;uniqueIndex:idx_users_clerk_id"`
	Email      string    `json:"email" gorm:"not null;uniqueIndex:idx_users_email"`
	Name       string    `json:"name" gorm:"not null"`
	Age        *int      `json:"age,omitempty"`
	Profession string    `json:"profession,omitempty"`
	City       string    `json:"city" gorm:"not null;index:idx_users_city"`
	Bio        string    `json:"bio,omitempty" gorm:"type:text"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Many-to-Many Relations
	Interests []*Interest `json:"interests,omitempty" gorm:"many2many:user_interests"`
	Tags      []*Tag      `json:"tags,omitempty" gorm:"many2many:user_tags"`

	// One-to-Many Relations
	HostedEvents []*Event `json:"hosted_events,omitempty" gorm:"foreignKey:HostID"`
	RSVPs        []*RSVP  `json:"rsvps,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserInterest is the user/interest join row. Position preserves the order
// the member picked interests during onboarding.
type UserInterest struct {
	UserID     uuid.UUID `json:"user_id" gorm:"primaryKey;type:uuid"`
	InterestID uuid.UUID `json:"interest_id" gorm:"primaryKey;type:uuid"`
	Position   int       `json:"position" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserTag is the user/tag join row.
type UserTag struct {
	UserID    uuid.UUID `json:"user_id" gorm:"primaryKey;type:uuid"`
	TagID     uuid.UUID `json:"tag_id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
}
