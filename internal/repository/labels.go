package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/newcity-hq/newcity-api/internal/models"
)

// GetOrCreateTag returns the tag with the given name, inserting it if absent.
// The conditional insert plus the unique index on name means two concurrent
// calls for the same name cannot produce two rows; the loser of the race
// simply reads the winner's row back.
func GetOrCreateTag(tx *gorm.DB, name string) (*models.Tag, error) {
	candidate := models.Tag{Name: name}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&candidate).Error
	if err != nil {
		return nil, err
	}

	// Re-read unconditionally: on conflict the candidate keeps its unsaved ID.
	var tag models.Tag
	if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetOrCreateInterest is the interest twin of GetOrCreateTag.
func GetOrCreateInterest(tx *gorm.DB, name string) (*models.Interest, error) {
	candidate := models.Interest{Name: name}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&candidate).Error
	if err != nil {
		return nil, err
	}

	var interest models.Interest
	if err := tx.Where("name = ?", name).First(&interest).Error; err != nil {
		return nil, err
	}
	return &interest, nil
}
