package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc/metadata"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
)

type contextKey string

const (
	// UserContextKey is the key used to store the resolved user in the context
	UserContextKey contextKey = "user"

	TokenCookie        = "token"
	RefreshTokenCookie = "refreshToken"
)

type AuthMiddleware struct {
	guard *Guard
	log   *zap.Logger
}

func NewAuthMiddleware(guard *Guard, log *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		guard: guard,
		log:   log,
	}
}

// Authenticate requires a valid access token for a live, unlocked user.
func (m *AuthMiddleware) Authenticate(ctx context.Context) (context.Context, error) {
	res, err := m.guard.Resolve(ctx, TokenFromContext(ctx))
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return ContextWithUser(ctx, res.User), nil
}

// AuthenticateOptional attaches the user when the token resolves and leaves
// the context anonymous otherwise, including when the user lookup fails.
func (m *AuthMiddleware) AuthenticateOptional(ctx context.Context) (context.Context, error) {
	res, err := m.guard.Resolve(ctx, TokenFromContext(ctx))
	if err != nil {
		m.log.Warn("could not resolve optional caller, continuing anonymously", zap.Error(err))
		return ctx, nil
	}
	if res.Outcome != Authenticated {
		return ctx, nil
	}
	return ContextWithUser(ctx, res.User), nil
}

// TokenFromContext reads "authorization: Bearer <token>" and falls back to
// the token cookie.
func TokenFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	for _, value := range md.Get("authorization") {
		scheme, token, found := strings.Cut(strings.TrimSpace(value), " ")
		if found && strings.EqualFold(scheme, "Bearer") && strings.TrimSpace(token) != "" {
			return strings.TrimSpace(token)
		}
	}
	return CookieFromContext(ctx, TokenCookie)
}

// CookieFromContext returns the named cookie from the cookie metadata entry.
func CookieFromContext(ctx context.Context, name string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	header := http.Header{"Cookie": md.Get("cookie")}
	cookie, err := (&http.Request{Header: header}).Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func ContextWithUser(ctx context.Context, user *storage.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// UserFromContext returns the user attached by the middleware.
func UserFromContext(ctx context.Context) (*storage.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*storage.User)
	return user, ok && user != nil
}

// UserIDFromContext fails with common.ErrUnauthenticated on anonymous contexts.
func UserIDFromContext(ctx context.Context) (string, error) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return "", common.ErrUnauthenticated
	}
	return user.ID, nil
}
