package client

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient is the slice of the Firebase auth API the server consumes.
type AuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// TokenExpireVerifier reports whether a verification error means the token
// merely expired, as opposed to an infrastructure failure.
type TokenExpireVerifier func(err error) bool
