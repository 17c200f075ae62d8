package model

import (
	"time"

	"gorm.io/gorm"
)

// User is a participant. The ID comes from the identity provider and is the
// participant identifier votes and sessions are keyed on.
type User struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	FirstName *string
	LastName  *string
	Email     string `gorm:"not null"`
}
