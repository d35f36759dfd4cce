package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/metadata"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
)

func TestGuard_Resolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	ghost := env.register(t, "ghost")

	guard := NewGuard(env.tokens, env.backend, zap.NewNop())
	guard.now = env.clock.Now

	lockUntil := env.clock.Now().Add(time.Hour)
	_, err := env.backend.Users().UpdateUser(ctx, bob.User.ID, storage.UserUpdate{
		Lockout: &storage.LockoutState{Attempts: 5, LockUntil: &lockUntil},
	})
	require.NoError(t, err)
	require.NoError(t, env.backend.Users().DeleteUser(ctx, ghost.User.ID))

	expired, err := env.tokens.Issue(alice.User.ID, KindAccess, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		wantOutcome Outcome
		wantReason  Reason
	}{
		{name: "no token", token: "", wantOutcome: Unauthenticated},
		{name: "valid access token", token: alice.Tokens.AccessToken, wantOutcome: Authenticated},
		{name: "garbage", token: "abc.def.ghi", wantOutcome: Rejected, wantReason: ReasonInvalidToken},
		{name: "expired", token: expired, wantOutcome: Rejected, wantReason: ReasonTokenExpired},
		{name: "refresh token", token: alice.Tokens.RefreshToken, wantOutcome: Rejected, wantReason: ReasonWrongTokenKind},
		{name: "deleted user", token: ghost.Tokens.AccessToken, wantOutcome: Rejected, wantReason: ReasonUserNotFound},
		{name: "locked user", token: bob.Tokens.AccessToken, wantOutcome: Rejected, wantReason: ReasonAccountLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := guard.Resolve(ctx, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantReason, res.Reason)
			if tt.wantOutcome == Authenticated {
				require.NotNil(t, res.User)
				assert.Equal(t, alice.User.ID, res.User.ID)
			}
		})
	}
}

type failingUsers struct {
	storage.UserStore
}

func (failingUsers) FindUserByID(context.Context, string) (*storage.User, error) {
	return nil, storage.Unavailable("find user", errors.New("connection reset"))
}

func TestGuard_StorageFailureIsAnError(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	guard := NewGuard(env.tokens, env.backend, zap.NewNop())
	guard.users = failingUsers{}

	_, err := guard.Resolve(context.Background(), alice.Tokens.AccessToken)
	assert.ErrorIs(t, err, common.ErrStorageUnavailable)
}

func TestResolution_Err(t *testing.T) {
	assert.NoError(t, Resolution{Outcome: Authenticated}.Err())
	assert.ErrorIs(t, Resolution{Outcome: Unauthenticated}.Err(), common.ErrUnauthenticated)
	assert.ErrorIs(t, reject(ReasonAccountLocked).Err(), common.ErrAccountLocked)

	err := reject(ReasonTokenExpired).Err()
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.Contains(t, err.Error(), "token_expired")
}

func TestTokenFromContext(t *testing.T) {
	tests := []struct {
		name string
		md   metadata.MD
		want string
	}{
		{name: "no metadata", md: nil, want: ""},
		{name: "bearer", md: metadata.Pairs("authorization", "Bearer abc"), want: "abc"},
		{name: "lowercase scheme", md: metadata.Pairs("authorization", "bearer abc"), want: "abc"},
		{name: "other scheme", md: metadata.Pairs("authorization", "Basic abc"), want: ""},
		{name: "cookie", md: metadata.Pairs("cookie", "theme=dark; token=xyz"), want: "xyz"},
		{
			name: "header wins over cookie",
			md:   metadata.Pairs("authorization", "Bearer abc", "cookie", "token=xyz"),
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.md != nil {
				ctx = metadata.NewIncomingContext(ctx, tt.md)
			}
			assert.Equal(t, tt.want, TokenFromContext(ctx))
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	guard := NewGuard(env.tokens, env.backend, zap.NewNop())
	guard.now = env.clock.Now
	m := NewAuthMiddleware(guard, zap.NewNop())

	withToken := func(token string) context.Context {
		return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
	}

	ctx, err := m.Authenticate(withToken(alice.Tokens.AccessToken))
	require.NoError(t, err)
	userID, err := UserIDFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice.User.ID, userID)

	_, err = m.Authenticate(context.Background())
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	_, err = m.Authenticate(withToken(alice.Tokens.RefreshToken))
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	ctx, err = m.AuthenticateOptional(withToken("garbage"))
	require.NoError(t, err)
	_, err = UserIDFromContext(ctx)
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	ctx, err = m.AuthenticateOptional(withToken(alice.Tokens.AccessToken))
	require.NoError(t, err)
	user, ok := UserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)
}

type ownedThing struct {
	owner string
}

func (o *ownedThing) OwnerID() string {
	return o.owner
}

func TestAuthMiddleware_OptionalSurvivesStorageFailure(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	guard := NewGuard(env.tokens, env.backend, zap.NewNop())
	guard.users = failingUsers{}
	m := NewAuthMiddleware(guard, zap.NewNop())

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer "+alice.Tokens.AccessToken))

	anonymous, err := m.AuthenticateOptional(ctx)
	require.NoError(t, err)
	_, ok := UserFromContext(anonymous)
	assert.False(t, ok)

	_, err = m.Authenticate(ctx)
	assert.ErrorIs(t, err, common.ErrStorageUnavailable)
}

func TestRequireOwnership(t *testing.T) {
	ctx := context.Background()
	found := func(owner string) func(context.Context) (*ownedThing, error) {
		return func(context.Context) (*ownedThing, error) {
			return &ownedThing{owner: owner}, nil
		}
	}
	missing := func(context.Context) (*ownedThing, error) {
		return nil, common.ErrNotFound
	}

	thing, err := RequireOwnership(ctx, "user-1", found("user-1"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", thing.owner)

	_, err = RequireOwnership(ctx, "user-1", found("user-2"))
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = RequireOwnership(ctx, "user-1", missing)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = RequireOwnership(ctx, "", found("user-1"))
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}
