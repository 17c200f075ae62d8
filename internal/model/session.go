package model

import (
	"time"
)

// DefaultQuorum is the minimum number of distinct positive votes on one
// candidate required to declare a match. Sessions may raise it at creation
// time but never lower it.
const DefaultQuorum = 2

type MatchSession struct {
	// ID is the short shareable join token. Anyone holding it may vote.
	ID        string `gorm:"primaryKey"`
	CreatorID string `gorm:"not null"`
	CreatedAt time.Time
	Active    bool `gorm:"not null"`
	Quorum    int  `gorm:"not null"`
}
