package service

import (
	"context"
	"fmt"

	ctx "github.com/reelmatch/backend/internal/context"
	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/model"
	"github.com/reelmatch/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

type SessionService interface {
	Create(c context.Context, quorum int) (model.MatchSession, error)
	Get(id string) (model.MatchSession, error)
}

type sessionService struct {
	sessionRepository repository.SessionRepository
}

func newSessionService(sessionRepository repository.SessionRepository) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
	}
}

// Create starts a new match session owned by the authenticated caller. The
// returned session id is the share link payload: anyone holding it may vote.
func (s *sessionService) Create(c context.Context, quorum int) (model.MatchSession, error) {
	user, ok := ctx.GetUserFromContext(c)
	if !ok {
		return model.MatchSession{}, fmt.Errorf("%w: user not found in context", dto.ErrNotAuthorized)
	}

	if quorum < model.DefaultQuorum {
		quorum = model.DefaultQuorum
	}

	session, err := s.sessionRepository.Create(user.ID, quorum)
	if err != nil {
		return model.MatchSession{}, err
	}

	logrus.Infof("User %s created match session %s (quorum %d)", user.ID, session.ID, session.Quorum)

	return session, nil
}

func (s *sessionService) Get(id string) (model.MatchSession, error) {
	return s.sessionRepository.GetByID(id)
}
