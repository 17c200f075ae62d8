package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/reelmatch/backend/internal/model"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type VoteRepositoryTestSuite struct {
	suite.Suite
	db      *gorm.DB
	repo    VoteRepository
	testNow time.Time
}

func (s *VoteRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.db = db

	repos := NewRepositories(db)
	s.repo = repos.Vote()

	s.testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestVoteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VoteRepositoryTestSuite))
}

func (s *VoteRepositoryTestSuite) vote(participantID string, candidateID uint, value bool, at time.Time) bool {
	inserted, err := s.repo.Record(model.Vote{
		SessionID:     "ab12cd",
		ParticipantID: participantID,
		CandidateID:   candidateID,
		CandidateKind: model.CandidateKindMovie,
		Value:         value,
		CreatedAt:     at,
	})
	s.Require().NoError(err)
	return inserted
}

func (s *VoteRepositoryTestSuite) TestRecordIsIdempotent() {
	s.True(s.vote("u1", 42, true, s.testNow))

	// The repeated triple is dropped, not overwritten: the stored value
	// stays true even though the retry says false.
	inserted, err := s.repo.Record(model.Vote{
		SessionID:     "ab12cd",
		ParticipantID: "u1",
		CandidateID:   42,
		CandidateKind: model.CandidateKindMovie,
		Value:         false,
		CreatedAt:     s.testNow.Add(time.Second),
	})
	s.Require().NoError(err)
	s.False(inserted)

	count, err := s.repo.CountPositive("ab12cd", 42)
	s.Require().NoError(err)
	s.Equal(int32(1), count)

	var rows int64
	s.Require().NoError(s.db.Model(&model.Vote{}).Count(&rows).Error)
	s.Equal(int64(1), rows)
}

func (s *VoteRepositoryTestSuite) TestCountPositiveExcludesNegatives() {
	s.vote("u1", 42, true, s.testNow)
	s.vote("u2", 42, false, s.testNow.Add(time.Second))
	s.vote("u3", 42, true, s.testNow.Add(2*time.Second))

	count, err := s.repo.CountPositive("ab12cd", 42)
	s.Require().NoError(err)
	s.Equal(int32(2), count)
}

func (s *VoteRepositoryTestSuite) TestCountPositiveScopedToSession() {
	s.vote("u1", 42, true, s.testNow)

	_, err := s.repo.Record(model.Vote{
		SessionID:     "other1",
		ParticipantID: "u2",
		CandidateID:   42,
		CandidateKind: model.CandidateKindMovie,
		Value:         true,
		CreatedAt:     s.testNow,
	})
	s.Require().NoError(err)

	count, err := s.repo.CountPositive("ab12cd", 42)
	s.Require().NoError(err)
	s.Equal(int32(1), count)
}

func (s *VoteRepositoryTestSuite) TestFirstQuorumCandidateBelowQuorum() {
	s.vote("u1", 42, true, s.testNow)

	_, found, err := s.repo.FirstQuorumCandidate("ab12cd", 2)
	s.Require().NoError(err)
	s.False(found)
}

func (s *VoteRepositoryTestSuite) TestFirstQuorumCandidateNegativesNeverCount() {
	s.vote("u1", 42, false, s.testNow)
	s.vote("u2", 42, false, s.testNow.Add(time.Second))
	s.vote("u3", 42, false, s.testNow.Add(2*time.Second))

	_, found, err := s.repo.FirstQuorumCandidate("ab12cd", 2)
	s.Require().NoError(err)
	s.False(found)
}

func (s *VoteRepositoryTestSuite) TestFirstQuorumCandidateSimple() {
	s.vote("u1", 42, true, s.testNow)
	s.vote("u2", 42, true, s.testNow.Add(time.Second))

	candidateID, found, err := s.repo.FirstQuorumCandidate("ab12cd", 2)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(uint(42), candidateID)
}

func (s *VoteRepositoryTestSuite) TestFirstQuorumCandidateEarliestQuorumWins() {
	// Candidate 42 collected its first like before candidate 43 got any,
	// but 43 reached quorum first. 43 wins.
	s.vote("u1", 42, true, s.testNow)
	s.vote("u3", 43, true, s.testNow.Add(1*time.Second))
	s.vote("u4", 43, true, s.testNow.Add(2*time.Second))
	s.vote("u2", 42, true, s.testNow.Add(3*time.Second))

	candidateID, found, err := s.repo.FirstQuorumCandidate("ab12cd", 2)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(uint(43), candidateID)
}

func (s *VoteRepositoryTestSuite) TestFirstQuorumCandidateTieBreaksOnCandidateID() {
	s.vote("u1", 43, true, s.testNow)
	s.vote("u2", 43, true, s.testNow.Add(time.Second))
	s.vote("u3", 42, true, s.testNow)
	s.vote("u4", 42, true, s.testNow.Add(time.Second))

	candidateID, found, err := s.repo.FirstQuorumCandidate("ab12cd", 2)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(uint(42), candidateID)
}

func (s *VoteRepositoryTestSuite) TestCandidateKind() {
	_, err := s.repo.Record(model.Vote{
		SessionID:     "ab12cd",
		ParticipantID: "u1",
		CandidateID:   7,
		CandidateKind: model.CandidateKindTV,
		Value:         true,
		CreatedAt:     s.testNow,
	})
	s.Require().NoError(err)

	kind, err := s.repo.CandidateKind("ab12cd", 7)
	s.Require().NoError(err)
	s.Equal(model.CandidateKindTV, kind)

	_, err = s.repo.CandidateKind("ab12cd", 8)
	s.Error(err)
}

func (s *VoteRepositoryTestSuite) TestFirstQuorumCandidateLateVotesDoNotShiftQuorumTime() {
	// Candidate 42 reached quorum at t+1; a third like at t+5 must not push
	// its quorum time past candidate 43's t+3.
	s.vote("u1", 42, true, s.testNow)
	s.vote("u2", 42, true, s.testNow.Add(1*time.Second))
	s.vote("u3", 43, true, s.testNow.Add(2*time.Second))
	s.vote("u4", 43, true, s.testNow.Add(3*time.Second))
	s.vote("u5", 42, true, s.testNow.Add(5*time.Second))

	candidateID, found, err := s.repo.FirstQuorumCandidate("ab12cd", 2)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(uint(42), candidateID)
}
