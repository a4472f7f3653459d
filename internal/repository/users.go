package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/newcity-hq/newcity-api/internal/models"
)

// UserRepository persists users and their interest/tag associations.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user plus all interest/tag associations in a single
// transaction, so a failed label attachment never leaves a half-onboarded
// profile behind. Interest order follows the order of interestNames.
func (r *UserRepository) Create(ctx context.Context, user *models.User, interestNames, tagNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		for i, name := range interestNames {
			interest, err := GetOrCreateInterest(tx, name)
			if err != nil {
				return err
			}
			link := models.UserInterest{
				UserID:     user.ID,
				InterestID: interest.ID,
				Position:   i,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		for _, name := range tagNames {
			tag, err := GetOrCreateTag(tx, name)
			if err != nil {
				return err
			}
			link := models.UserTag{UserID: user.ID, TagID: tag.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// GetByClerkID loads the user for an identity-provider subject with interests
// (in onboarding order) and tags attached.
func (r *UserRepository) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("clerk_id = ?", clerkID).
		First(&user).Error
	if err != nil {
		return nil, err
	}

	if err := r.loadOrderedInterests(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ResolveClerkID maps an identity-provider subject to the internal user row
// without pulling relations. Used wherever only the user id matters.
func (r *UserRepository) ResolveClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("clerk_id = ?", clerkID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListWithLabels returns every user except the given one, with interests and
// tags preloaded. Input for match scoring.
func (r *UserRepository) ListWithLabels(ctx context.Context, exclude uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Preload("Interests").
		Preload("Tags").
		Where("id <> ?", exclude).
		Order("name ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) loadOrderedInterests(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).
		Joins("JOIN user_interests ON user_interests.interest_id = interests.id").
		Where("user_interests.user_id = ?", user.ID).
		Order("user_interests.position ASC").
		Find(&user.Interests).Error
}
