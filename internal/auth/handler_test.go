package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/elskow/tasktrack/internal/api"
	pb "github.com/elskow/tasktrack/proto/gen/tasktrack"
)

func newTestHandler(t *testing.T) (*Handler, *testEnv) {
	env := newTestEnv(t)
	return NewHandler(env.service, newTestLogger(t)), env
}

func TestHandler_Register(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	valid := &pb.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "testpass123",
		FirstName: "Test",
		LastName:  "User",
	}

	tests := []struct {
		name     string
		request  *pb.RegisterRequest
		wantCode codes.Code
	}{
		{
			name:     "valid registration",
			request:  valid,
			wantCode: codes.OK,
		},
		{
			name:     "duplicate registration",
			request:  valid,
			wantCode: codes.AlreadyExists,
		},
		{
			name: "empty password",
			request: &pb.RegisterRequest{
				Username:  "another",
				Email:     "another@example.com",
				FirstName: "Test",
				LastName:  "User",
			},
			wantCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.Register(ctx, tt.request)

			if tt.wantCode != codes.OK {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, resp.Message)
			assert.NotEmpty(t, resp.AccessToken)
			assert.NotEmpty(t, resp.RefreshToken)
			assert.Equal(t, api.TokenTypeBearer, resp.TokenType)
			assert.Equal(t, int64(900), resp.ExpiresIn)
			assert.Equal(t, "testuser", resp.GetUser().GetUsername())
		})
	}
}

func TestHandler_Login(t *testing.T) {
	h, env := newTestHandler(t)
	ctx := context.Background()
	env.register(t, "alice")

	tests := []struct {
		name     string
		request  *pb.LoginRequest
		wantCode codes.Code
	}{
		{
			name:     "valid credentials",
			request:  &pb.LoginRequest{Email: "alice@example.com", Password: testPassword},
			wantCode: codes.OK,
		},
		{
			name:     "wrong password",
			request:  &pb.LoginRequest{Email: "alice@example.com", Password: "nope-nope"},
			wantCode: codes.Unauthenticated,
		},
		{
			name:     "unknown user looks the same",
			request:  &pb.LoginRequest{Email: "ghost@example.com", Password: testPassword},
			wantCode: codes.Unauthenticated,
		},
		{
			name:     "missing email",
			request:  &pb.LoginRequest{Password: testPassword},
			wantCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.Login(ctx, tt.request)

			if tt.wantCode != codes.OK {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, resp.AccessToken)
			assert.NotNil(t, resp.GetUser().GetLastLogin())
		})
	}
}

func TestHandler_RefreshFromCookie(t *testing.T) {
	h, env := newTestHandler(t)
	session := env.register(t, "alice")

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("cookie", RefreshTokenCookie+"="+session.Tokens.RefreshToken))

	resp, err := h.Refresh(ctx, &pb.RefreshRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = h.Refresh(context.Background(), &pb.RefreshRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestHandler_RequiresIdentity(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	_, err := h.Me(ctx, &pb.MeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.Logout(ctx, &pb.LogoutRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.DeleteAccount(ctx, &pb.DeleteAccountRequest{Password: testPassword})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestHandler_ProfileFlow(t *testing.T) {
	h, env := newTestHandler(t)
	session := env.register(t, "alice")
	ctx := ContextWithUser(context.Background(), session.User)

	me, err := h.Me(ctx, &pb.MeRequest{})
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, me.GetUser().GetId())

	theme := "system"
	reminders := false
	updated, err := h.UpdatePreferences(ctx, &pb.UpdatePreferencesRequest{
		Preferences: &pb.PreferencesPatch{
			Theme:         &theme,
			Notifications: &pb.NotificationsPatch{Reminders: &reminders},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "system", updated.GetUser().GetPreferences().GetTheme())
	assert.False(t, updated.GetUser().GetPreferences().GetNotifications().GetReminders())
	assert.True(t, updated.GetUser().GetPreferences().GetNotifications().GetEmail())

	unchanged, err := h.UpdatePreferences(ctx, &pb.UpdatePreferencesRequest{})
	require.NoError(t, err)
	assert.Equal(t, "system", unchanged.GetUser().GetPreferences().GetTheme())

	lastName := "Liddell"
	updated, err = h.UpdateProfile(ctx, &pb.UpdateProfileRequest{LastName: &lastName})
	require.NoError(t, err)
	assert.Equal(t, "Liddell", updated.GetUser().GetLastName())
	assert.Equal(t, "system", updated.GetUser().GetPreferences().GetTheme())

	_, err = h.ChangePassword(ctx, &pb.ChangePasswordRequest{CurrentPassword: "bad-one", NewPassword: "new-password"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	resp, err := h.ChangePassword(ctx, &pb.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "new-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)

	_, err = h.Logout(ctx, &pb.LogoutRequest{})
	require.NoError(t, err)

	_, err = h.DeleteAccount(ctx, &pb.DeleteAccountRequest{Password: "new-password"})
	require.NoError(t, err)

	_, err = h.Me(ctx, &pb.MeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
