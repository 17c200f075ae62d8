package repository

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/model"
	"gorm.io/gorm"
)

// tokenAlphabet deliberately omits characters that read ambiguously when the
// token is shared out loud or copied from a screenshot (0/o, 1/l/i).
const (
	tokenAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"
	tokenLength   = 6

	maxTokenAttempts = 5
)

type SessionRepository interface {
	Create(creatorID string, quorum int) (model.MatchSession, error)
	GetByID(id string) (model.MatchSession, error)
	Deactivate(id string) error
}

type session struct {
	db *gorm.DB
}

func newSessionRepository(db *gorm.DB) SessionRepository {
	return &session{
		db: db,
	}
}

func (s *session) Create(creatorID string, quorum int) (model.MatchSession, error) {
	// No pre-insert collision lookup: the primary key constraint is the
	// authority, and a duplicate token simply triggers another draw.
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := generateToken()
		if err != nil {
			return model.MatchSession{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
		}

		newSession := model.MatchSession{
			ID:        token,
			CreatorID: creatorID,
			Active:    true,
			Quorum:    quorum,
		}

		result := s.db.Create(&newSession)
		if result.Error == nil {
			return newSession, nil
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			continue
		}
		return model.MatchSession{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return model.MatchSession{}, fmt.Errorf("%w: could not allocate a session token", dto.ErrInternalFailure)
}

func (s *session) GetByID(id string) (model.MatchSession, error) {
	var found model.MatchSession
	result := s.db.First(&found, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.MatchSession{}, fmt.Errorf("%w: session %s", dto.ErrNotFound, id)
		}
		return model.MatchSession{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (s *session) Deactivate(id string) error {
	result := s.db.Model(&model.MatchSession{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}

func generateToken() (string, error) {
	token := make([]byte, tokenLength)
	for i := range token {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenAlphabet))))
		if err != nil {
			return "", err
		}
		token[i] = tokenAlphabet[n.Int64()]
	}
	return string(token), nil
}
