package model

import "time"

// Vote records one participant's verdict on one candidate within a session.
// The composite unique index makes repeated votes for the same triple collapse
// to a single row at the schema level, so idempotency holds under concurrent
// writers without a read-then-write check.
type Vote struct {
	ID            uint          `gorm:"primarykey"`
	SessionID     string        `gorm:"not null;uniqueIndex:idx_session_participant_candidate"`
	ParticipantID string        `gorm:"not null;uniqueIndex:idx_session_participant_candidate"`
	CandidateID   uint          `gorm:"not null;uniqueIndex:idx_session_participant_candidate"`
	CandidateKind CandidateKind `gorm:"not null"`
	Value         bool          `gorm:"not null"`
	CreatedAt     time.Time
}
