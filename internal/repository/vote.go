package repository

import (
	"fmt"

	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository interface {
	Record(vote model.Vote) (bool, error)
	CountPositive(sessionID string, candidateID uint) (int32, error)
	CandidateKind(sessionID string, candidateID uint) (model.CandidateKind, error)
	FirstQuorumCandidate(sessionID string, quorum int) (uint, bool, error)
}

type vote struct {
	db *gorm.DB
}

func newVoteRepository(db *gorm.DB) VoteRepository {
	return &vote{
		db: db,
	}
}

// Record inserts the vote unless the participant has already voted on this
// candidate in this session. The first vote wins; a repeated vote is reported
// as not inserted, never as an error, so concurrent double-submissions from an
// unstable client collapse cleanly.
func (v *vote) Record(vote model.Vote) (bool, error) {
	result := v.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "session_id"},
			{Name: "participant_id"},
			{Name: "candidate_id"},
		},
		DoNothing: true,
	}).Create(&vote)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (v *vote) CountPositive(sessionID string, candidateID uint) (int32, error) {
	var count int64
	result := v.db.Model(&model.Vote{}).
		Where("session_id = ? AND candidate_id = ? AND value = ?", sessionID, candidateID, true).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return int32(count), nil
}

// CandidateKind reports what kind of candidate the session voted on. All votes
// on one candidate carry the same kind, so any row answers.
func (v *vote) CandidateKind(sessionID string, candidateID uint) (model.CandidateKind, error) {
	var record model.Vote
	result := v.db.
		Where("session_id = ? AND candidate_id = ?", sessionID, candidateID).
		First(&record)
	if result.Error != nil {
		return model.CandidateKindMovie, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return record.CandidateKind, nil
}

// FirstQuorumCandidate returns the candidate whose quorum-th positive vote has
// the earliest timestamp among all candidates currently at or above quorum.
// Candidate id breaks the remaining ties so the answer is stable across
// participants polling the same session.
func (v *vote) FirstQuorumCandidate(sessionID string, quorum int) (uint, bool, error) {
	query := `
		SELECT candidate_id FROM (
			SELECT candidate_id,
				MAX(CASE WHEN rn = ? THEN created_at END) AS quorum_at
			FROM (
				SELECT candidate_id, created_at,
					ROW_NUMBER() OVER (
						PARTITION BY candidate_id
						ORDER BY created_at, id
					) AS rn
				FROM votes
				WHERE session_id = ? AND value = ?
			) ranked
			GROUP BY candidate_id
			HAVING COUNT(*) >= ?
		) qualified
		ORDER BY quorum_at, candidate_id
		LIMIT 1
	`

	var candidateIDs []uint
	result := v.db.Raw(query, quorum, sessionID, true, quorum).Scan(&candidateIDs)
	if result.Error != nil {
		return 0, false, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}
	if len(candidateIDs) == 0 {
		return 0, false, nil
	}

	return candidateIDs[0], true, nil
}
