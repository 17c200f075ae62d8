package ctx

import (
	"context"

	"github.com/reelmatch/backend/internal/model"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

type User = model.User

func GetUserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(UserContextKey).(User)
	return user, ok
}

func WithUser(parent context.Context, user User) context.Context {
	return context.WithValue(parent, UserContextKey, user)
}
