package models

import "gorm.io/gorm"

// Migrate creates or updates the four tables backing the application.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Follows{}, &Message{}, &Likes{})
}
