package http

import (
	"context"

	"olms-backend/internal/domain"
)

type userKey struct{}

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated user, or nil on public routes.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey{}).(*domain.User)
	return user
}
