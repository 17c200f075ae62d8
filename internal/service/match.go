package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reelmatch/backend/internal/client"
	ctx "github.com/reelmatch/backend/internal/context"
	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/model"
	"github.com/reelmatch/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

// MatchResult is what pollers converge on. Votes is only meaningful when
// Matched is true.
type MatchResult struct {
	Matched       bool
	CandidateID   uint
	CandidateKind model.CandidateKind
	Votes         int32
}

type MatchService interface {
	RecordVote(c context.Context, sessionID string, candidateID uint, kind model.CandidateKind, value bool) (bool, error)
	CheckCandidate(sessionID string, candidateID uint) MatchResult
	CheckSession(sessionID string) MatchResult
}

type matchService struct {
	sessionRepository repository.SessionRepository
	voteRepository    repository.VoteRepository
	brokerClient      client.BrokerClient
}

func newMatchService(sessionRepository repository.SessionRepository, voteRepository repository.VoteRepository, brokerClient client.BrokerClient) MatchService {
	return &matchService{
		sessionRepository: sessionRepository,
		voteRepository:    voteRepository,
		brokerClient:      brokerClient,
	}
}

// RecordVote writes one vote for the calling participant. A repeated vote on
// the same candidate is reported as not accepted, never as an error; the
// stored row keeps its original value.
func (m *matchService) RecordVote(c context.Context, sessionID string, candidateID uint, kind model.CandidateKind, value bool) (bool, error) {
	user, ok := ctx.GetUserFromContext(c)
	if !ok {
		return false, fmt.Errorf("%w: user not found in context", dto.ErrNotAuthorized)
	}

	session, err := m.sessionRepository.GetByID(sessionID)
	if err != nil {
		return false, err
	}
	if !session.Active {
		return false, fmt.Errorf("%w: session %s", dto.ErrSessionClosed, sessionID)
	}

	accepted, err := m.voteRepository.Record(model.Vote{
		SessionID:     sessionID,
		ParticipantID: user.ID,
		CandidateID:   candidateID,
		CandidateKind: kind,
		Value:         value,
	})
	if err != nil {
		return false, err
	}

	logrus.Infof("User %s voted on session %s candidate %d: value=%v accepted=%v",
		user.ID, sessionID, candidateID, value, accepted)

	return accepted, nil
}

// CheckCandidate answers "has this candidate matched" for one candidate. Any
// storage failure degrades to "no match yet": the next poll tick retries, and
// a transient false negative never breaks a participant's state machine.
func (m *matchService) CheckCandidate(sessionID string, candidateID uint) MatchResult {
	session, err := m.sessionRepository.GetByID(sessionID)
	if err != nil {
		logrus.Errorf("Match check failed for session %s: %v", sessionID, err)
		return MatchResult{}
	}

	count, err := m.voteRepository.CountPositive(sessionID, candidateID)
	if err != nil {
		logrus.Errorf("Vote count failed for session %s candidate %d: %v", sessionID, candidateID, err)
		return MatchResult{}
	}

	if int(count) < session.Quorum {
		return MatchResult{}
	}

	kind := m.candidateKind(sessionID, candidateID)
	m.announce(session, candidateID, kind, count)

	return MatchResult{
		Matched:       true,
		CandidateID:   candidateID,
		CandidateKind: kind,
		Votes:         count,
	}
}

// CheckSession finds the first candidate in the session meeting quorum, if
// any. The winner is stable across callers: ties between simultaneously
// qualified candidates break on the earliest quorum timestamp.
func (m *matchService) CheckSession(sessionID string) MatchResult {
	session, err := m.sessionRepository.GetByID(sessionID)
	if err != nil {
		logrus.Errorf("Match check failed for session %s: %v", sessionID, err)
		return MatchResult{}
	}

	candidateID, found, err := m.voteRepository.FirstQuorumCandidate(sessionID, session.Quorum)
	if err != nil {
		logrus.Errorf("Quorum query failed for session %s: %v", sessionID, err)
		return MatchResult{}
	}
	if !found {
		return MatchResult{}
	}

	count, err := m.voteRepository.CountPositive(sessionID, candidateID)
	if err != nil {
		logrus.Errorf("Vote count failed for session %s candidate %d: %v", sessionID, candidateID, err)
		return MatchResult{}
	}

	kind := m.candidateKind(sessionID, candidateID)
	m.announce(session, candidateID, kind, count)

	return MatchResult{
		Matched:       true,
		CandidateID:   candidateID,
		CandidateKind: kind,
		Votes:         count,
	}
}

// candidateKind reads the kind off the winning candidate's vote rows; a failed
// lookup falls back to movie, the only kind the feed serves today.
func (m *matchService) candidateKind(sessionID string, candidateID uint) model.CandidateKind {
	kind, err := m.voteRepository.CandidateKind(sessionID, candidateID)
	if err != nil {
		logrus.Errorf("Failed to resolve candidate kind for session %s: %v", sessionID, err)
		return model.CandidateKindMovie
	}
	return kind
}

// announce closes the session and publishes the match for presentation-layer
// consumers. Only the first observer sees Active still set, so duplicate
// announcements are rare, and consumers tolerate them anyway.
func (m *matchService) announce(session model.MatchSession, candidateID uint, kind model.CandidateKind, votes int32) {
	if !session.Active {
		return
	}

	if err := m.sessionRepository.Deactivate(session.ID); err != nil {
		logrus.Errorf("Failed to close session %s: %v", session.ID, err)
	}

	err := m.brokerClient.PublishMatch(client.MatchAnnouncement{
		ID:            uuid.NewString(),
		SessionID:     session.ID,
		CandidateID:   candidateID,
		CandidateKind: kind.String(),
		Votes:         votes,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		logrus.Errorf("Failed to publish match for session %s: %v", session.ID, err)
	}

	logrus.Infof("Session %s matched on candidate %d with %d votes", session.ID, candidateID, votes)
}
