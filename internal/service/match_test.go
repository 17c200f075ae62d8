package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/reelmatch/backend/internal/client"
	appctx "github.com/reelmatch/backend/internal/context"
	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/model"
	"github.com/reelmatch/backend/internal/repository"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MatchServiceTestSuite struct {
	suite.Suite
	repos        repository.Repositories
	broker       client.BrokerClient
	matchService MatchService
	session      model.MatchSession
}

func (s *MatchServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	s.Require().NoError(err)

	s.repos = repository.NewRepositories(db)
	s.broker = client.NewInMemoryBroker()
	s.matchService = newMatchService(s.repos.Session(), s.repos.Vote(), s.broker)

	s.session, err = s.repos.Session().Create("u1", model.DefaultQuorum)
	s.Require().NoError(err)
}

func TestMatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}

func (s *MatchServiceTestSuite) asUser(id string) context.Context {
	return appctx.WithUser(context.Background(), model.User{ID: id, Email: id + "@example.com"})
}

func (s *MatchServiceTestSuite) like(userID string, candidateID uint) bool {
	accepted, err := s.matchService.RecordVote(s.asUser(userID), s.session.ID, candidateID, model.CandidateKindMovie, true)
	s.Require().NoError(err)
	return accepted
}

func (s *MatchServiceTestSuite) dislike(userID string, candidateID uint) bool {
	accepted, err := s.matchService.RecordVote(s.asUser(userID), s.session.ID, candidateID, model.CandidateKindMovie, false)
	s.Require().NoError(err)
	return accepted
}

func (s *MatchServiceTestSuite) TestHappyPath() {
	s.True(s.like("u1", 42))
	s.True(s.like("u2", 42))

	result := s.matchService.CheckCandidate(s.session.ID, 42)
	s.True(result.Matched)
	s.Equal(uint(42), result.CandidateID)
	s.Equal(int32(2), result.Votes)

	// 43 was never voted on.
	s.False(s.matchService.CheckCandidate(s.session.ID, 43).Matched)
}

func (s *MatchServiceTestSuite) TestSingleLikeIsNotAMatch() {
	s.True(s.like("u1", 42))

	s.False(s.matchService.CheckCandidate(s.session.ID, 42).Matched)
	s.False(s.matchService.CheckSession(s.session.ID).Matched)
}

func (s *MatchServiceTestSuite) TestDuplicateVoteSuppressed() {
	s.True(s.like("u1", 42))
	s.True(s.like("u2", 42))
	s.False(s.like("u2", 42))

	result := s.matchService.CheckCandidate(s.session.ID, 42)
	s.True(result.Matched)
	s.Equal(int32(2), result.Votes)
}

func (s *MatchServiceTestSuite) TestNoSelfReinforcement() {
	// One participant liking the same candidate repeatedly never reaches
	// quorum alone.
	s.True(s.like("u1", 42))
	s.False(s.like("u1", 42))
	s.False(s.like("u1", 42))

	s.False(s.matchService.CheckCandidate(s.session.ID, 42).Matched)
}

func (s *MatchServiceTestSuite) TestNegativeVotesNeverCount() {
	s.True(s.dislike("u1", 42))
	s.True(s.dislike("u2", 42))
	s.True(s.dislike("u3", 42))

	s.False(s.matchService.CheckCandidate(s.session.ID, 42).Matched)
	s.False(s.matchService.CheckSession(s.session.ID).Matched)
}

func (s *MatchServiceTestSuite) TestCheckSessionFindsMatch() {
	s.True(s.like("u1", 42))
	s.True(s.like("u2", 42))

	result := s.matchService.CheckSession(s.session.ID)
	s.True(result.Matched)
	s.Equal(uint(42), result.CandidateID)
	s.Equal(int32(2), result.Votes)
}

func (s *MatchServiceTestSuite) TestIndependenceAcrossCandidates() {
	s.True(s.like("u1", 42))
	s.True(s.like("u2", 42))
	s.True(s.like("u3", 43))
	s.True(s.like("u4", 43))

	// Both candidates independently satisfy quorum.
	s.True(s.matchService.CheckCandidate(s.session.ID, 42).Matched)
	s.True(s.matchService.CheckCandidate(s.session.ID, 43).Matched)

	result := s.matchService.CheckSession(s.session.ID)
	s.True(result.Matched)
	s.Contains([]uint{42, 43}, result.CandidateID)
}

func (s *MatchServiceTestSuite) TestMatchClosesSessionAndAnnounces() {
	announcements, err := s.broker.SubscribeToMatches("observer")
	s.Require().NoError(err)

	s.True(s.like("u1", 42))
	s.True(s.like("u2", 42))

	s.True(s.matchService.CheckCandidate(s.session.ID, 42).Matched)

	closed, err := s.repos.Session().GetByID(s.session.ID)
	s.Require().NoError(err)
	s.False(closed.Active)

	announcement := <-announcements
	s.Equal(s.session.ID, announcement.SessionID)
	s.Equal(uint(42), announcement.CandidateID)
	s.Equal("movie", announcement.CandidateKind)
	s.Equal(int32(2), announcement.Votes)
	s.NotEmpty(announcement.ID)

	// A later poller still observes the match but nothing is republished.
	s.True(s.matchService.CheckSession(s.session.ID).Matched)
	select {
	case extra, ok := <-announcements:
		if ok {
			s.Failf("unexpected announcement", "got %+v", extra)
		}
	default:
	}
}

func (s *MatchServiceTestSuite) TestVoteOnClosedSessionRejected() {
	s.True(s.like("u1", 42))
	s.True(s.like("u2", 42))
	s.True(s.matchService.CheckSession(s.session.ID).Matched)

	_, err := s.matchService.RecordVote(s.asUser("u3"), s.session.ID, 44, model.CandidateKindMovie, true)
	s.Require().Error(err)
	s.True(errors.Is(err, dto.ErrSessionClosed))
}

func (s *MatchServiceTestSuite) TestMatchCarriesCandidateKind() {
	announcements, err := s.broker.SubscribeToMatches("tv-observer")
	s.Require().NoError(err)

	for _, userID := range []string{"u1", "u2"} {
		_, err := s.matchService.RecordVote(s.asUser(userID), s.session.ID, 9, model.CandidateKindTV, true)
		s.Require().NoError(err)
	}

	result := s.matchService.CheckCandidate(s.session.ID, 9)
	s.True(result.Matched)
	s.Equal(model.CandidateKindTV, result.CandidateKind)

	announcement := <-announcements
	s.Equal("tv", announcement.CandidateKind)
}

func (s *MatchServiceTestSuite) TestVoteWithoutUserRejected() {
	_, err := s.matchService.RecordVote(context.Background(), s.session.ID, 42, model.CandidateKindMovie, true)
	s.Require().Error(err)
	s.True(errors.Is(err, dto.ErrNotAuthorized))
}

func (s *MatchServiceTestSuite) TestVoteOnUnknownSessionRejected() {
	_, err := s.matchService.RecordVote(s.asUser("u1"), "nosuch", 42, model.CandidateKindMovie, true)
	s.Require().Error(err)
	s.True(errors.Is(err, dto.ErrNotFound))
}

func (s *MatchServiceTestSuite) TestCheckUnknownSessionDegradesToNoMatch() {
	s.False(s.matchService.CheckSession("nosuch").Matched)
	s.False(s.matchService.CheckCandidate("nosuch", 42).Matched)
}

func (s *MatchServiceTestSuite) TestRaisedQuorum() {
	session, err := s.repos.Session().Create("u1", 3)
	s.Require().NoError(err)

	for _, userID := range []string{"u1", "u2"} {
		_, err := s.matchService.RecordVote(s.asUser(userID), session.ID, 42, model.CandidateKindMovie, true)
		s.Require().NoError(err)
	}
	s.False(s.matchService.CheckCandidate(session.ID, 42).Matched)

	_, err = s.matchService.RecordVote(s.asUser("u3"), session.ID, 42, model.CandidateKindMovie, true)
	s.Require().NoError(err)
	s.True(s.matchService.CheckCandidate(session.ID, 42).Matched)
}
