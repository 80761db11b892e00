package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table the
// repositories use.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&dogModel{},
		&listingModel{},
		&bookingModel{},
		&messageModel{},
		&reviewModel{},
	)
}
