package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/reelmatch/backend/internal/client"
	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/model"
	"github.com/reelmatch/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

// AuthService turns a bearer token into the stable participant identity every
// session and vote is keyed on.
type AuthService interface {
	ValidateToken(ctx context.Context, token string) (model.User, error)
}

type authService struct {
	userRepository      repository.UserRepository
	authClient          client.AuthClient
	tokenExpireVerifier client.TokenExpireVerifier
}

func newAuthService(userRepository repository.UserRepository, authClient client.AuthClient, verifier client.TokenExpireVerifier) AuthService {
	return &authService{userRepository: userRepository, authClient: authClient, tokenExpireVerifier: verifier}
}

func (a *authService) ValidateToken(ctx context.Context, token string) (model.User, error) {
	response, err := a.authClient.VerifyIDToken(ctx, token)
	if err != nil {
		if a.tokenExpireVerifier(err) {
			return model.User{}, fmt.Errorf("%w: %v", dto.ErrNotAuthorized, err)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	userEmail, ok := response.Claims["email"].(string)
	if !ok {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, "email claim missing or not a string")
	}

	user, err := a.userRepository.GetByID(response.UID)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			newUser, err := a.userRepository.Create(model.User{
				ID:    response.UID,
				Email: userEmail,
			})
			if err != nil {
				return model.User{}, err
			}

			logrus.Infof("Registered new participant %s", newUser.ID)
			return newUser, nil
		}
		return model.User{}, err
	}

	if user.Email != userEmail {
		user.Email = userEmail

		_, err = a.userRepository.Save(user)
		if err != nil {
			return model.User{}, err
		}
	}

	return user, nil
}
