package repository

import (
	"github.com/reelmatch/backend/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Repositories interface {
	User() UserRepository
	Session() SessionRepository
	Vote() VoteRepository
}

type repositories struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	voteRepository    VoteRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	err := db.AutoMigrate(&model.User{}, &model.MatchSession{}, &model.Vote{})
	if err != nil {
		logrus.Panic(err)
	}
	userRepository := newUserRepository(db)
	sessionRepository := newSessionRepository(db)
	voteRepository := newVoteRepository(db)
	return &repositories{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		voteRepository:    voteRepository,
	}
}

func (r repositories) User() UserRepository {
	return r.userRepository
}

func (r repositories) Session() SessionRepository {
	return r.sessionRepository
}

func (r repositories) Vote() VoteRepository {
	return r.voteRepository
}
