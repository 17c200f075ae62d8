package service

import (
	authV4 "firebase.google.com/go/v4/auth"
	"github.com/reelmatch/backend/internal/client"
	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/repository"
)

type Services interface {
	Auth() AuthService
	Session() SessionService
	Match() MatchService
	Feed() FeedService
}

type services struct {
	authService    AuthService
	sessionService SessionService
	matchService   MatchService
	feedService    FeedService
}

func NewServices(repositories repository.Repositories, config dto.Config, clients client.Clients) Services {
	return &services{
		authService:    newAuthService(repositories.User(), clients.AuthClient(), authV4.IsIDTokenExpired),
		sessionService: newSessionService(repositories.Session()),
		matchService:   newMatchService(repositories.Session(), repositories.Vote(), clients.BrokerClient()),
		feedService:    newFeedService(clients.CatalogClient()),
	}
}

func (s services) Auth() AuthService {
	return s.authService
}

func (s services) Session() SessionService {
	return s.sessionService
}

func (s services) Match() MatchService {
	return s.matchService
}

func (s services) Feed() FeedService {
	return s.feedService
}
