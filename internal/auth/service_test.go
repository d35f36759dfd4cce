package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
)

func TestService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session := env.register(t, "alice")
	assert.NotEmpty(t, session.User.ID)
	assert.Equal(t, "alice@example.com", session.User.Email)
	assert.Equal(t, storage.RoleUser, session.User.Role)
	assert.Equal(t, storage.DefaultPreferences(), session.User.Preferences)
	assert.NotEqual(t, testPassword, session.User.PasswordHash)
	assert.NotEmpty(t, session.Tokens.AccessToken)
	assert.NotEmpty(t, session.Tokens.RefreshToken)

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{
			name: "duplicate email ignores case",
			input: RegisterInput{
				Username: "alice2", Email: " ALICE@example.com ", Password: testPassword,
				FirstName: "A", LastName: "B",
			},
			wantErr: common.ErrDuplicateIdentity,
		},
		{
			name: "duplicate username",
			input: RegisterInput{
				Username: "alice", Email: "other@example.com", Password: testPassword,
				FirstName: "A", LastName: "B",
			},
			wantErr: common.ErrDuplicateIdentity,
		},
		{
			name: "short username",
			input: RegisterInput{
				Username: "al", Email: "al@example.com", Password: testPassword,
				FirstName: "A", LastName: "B",
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "username with symbols",
			input: RegisterInput{
				Username: "al-ice!", Email: "al@example.com", Password: testPassword,
				FirstName: "A", LastName: "B",
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "invalid email",
			input: RegisterInput{
				Username: "bob", Email: "not-an-email", Password: testPassword,
				FirstName: "A", LastName: "B",
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "short password",
			input: RegisterInput{
				Username: "bob", Email: "bob@example.com", Password: "12345",
				FirstName: "A", LastName: "B",
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "missing last name",
			input: RegisterInput{
				Username: "bob", Email: "bob@example.com", Password: testPassword,
				FirstName: "A", LastName: "  ",
			},
			wantErr: common.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.service.Register(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registered := env.register(t, "alice")

	session, err := env.service.Login(ctx, "Alice@Example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, session.User.ID)
	require.NotNil(t, session.User.LastLogin)
	assert.Equal(t, env.clock.Now(), *session.User.LastLogin)

	claims, err := env.tokens.Verify(session.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.Subject)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "wrong password", email: "alice@example.com", password: "wrong-password", wantErr: common.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", password: testPassword, wantErr: common.ErrInvalidCredentials},
		{name: "empty password", email: "alice@example.com", password: "", wantErr: common.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.service.Login(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_LoginLockout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registered := env.register(t, "alice")

	attempts := func() storage.LockoutState {
		user, err := env.backend.Users().FindUserByID(ctx, registered.User.ID)
		require.NoError(t, err)
		return user.Lockout
	}

	for i := 1; i <= DefaultMaxLoginAttempts; i++ {
		_, err := env.service.Login(ctx, "alice@example.com", "wrong-password")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
		assert.Equal(t, i, attempts().Attempts)
	}

	state := attempts()
	require.NotNil(t, state.LockUntil)
	assert.Equal(t, env.clock.Now().Add(DefaultLockDuration), *state.LockUntil)

	// The correct password is refused while locked and does not count.
	_, err := env.service.Login(ctx, "alice@example.com", testPassword)
	assert.ErrorIs(t, err, common.ErrAccountLocked)
	assert.Equal(t, DefaultMaxLoginAttempts, attempts().Attempts)

	env.clock.Advance(DefaultLockDuration - time.Second)
	_, err = env.service.Login(ctx, "alice@example.com", testPassword)
	assert.ErrorIs(t, err, common.ErrAccountLocked)

	env.clock.Advance(time.Second)
	_, err = env.service.Login(ctx, "alice@example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, storage.LockoutState{}, attempts())
}

func TestService_LoginAfterExpiredLockStartsFresh(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice")

	for i := 0; i < DefaultMaxLoginAttempts; i++ {
		_, _ = env.service.Login(ctx, "alice@example.com", "wrong-password")
	}
	env.clock.Advance(DefaultLockDuration)

	_, err := env.service.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	user, err := env.backend.Users().FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, user.Lockout.Attempts)
	assert.Nil(t, user.Lockout.LockUntil)
}

func TestService_SuccessResetsCounter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice")

	for i := 0; i < DefaultMaxLoginAttempts-1; i++ {
		_, _ = env.service.Login(ctx, "alice@example.com", "wrong-password")
	}
	_, err := env.service.Login(ctx, "alice@example.com", testPassword)
	require.NoError(t, err)

	_, err = env.service.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	user, err := env.backend.Users().FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, user.Lockout.Attempts)
}

func TestService_Refresh(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "alice")

	tokens, err := env.service.Refresh(ctx, session.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Empty(t, tokens.RefreshToken)

	claims, err := env.tokens.Verify(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, KindAccess, claims.Kind)
	assert.Equal(t, session.User.ID, claims.Subject)

	_, err = env.service.Refresh(ctx, session.Tokens.AccessToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = env.service.Refresh(ctx, "")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	lockUntil := env.clock.Now().Add(time.Hour)
	_, err = env.backend.Users().UpdateUser(ctx, session.User.ID, storage.UserUpdate{
		Lockout: &storage.LockoutState{Attempts: 5, LockUntil: &lockUntil},
	})
	require.NoError(t, err)
	_, err = env.service.Refresh(ctx, session.Tokens.RefreshToken)
	assert.ErrorIs(t, err, common.ErrAccountLocked)

	require.NoError(t, env.backend.Users().DeleteUser(ctx, session.User.ID))
	_, err = env.service.Refresh(ctx, session.Tokens.RefreshToken)
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	env.clock.Advance(8 * 24 * time.Hour)
	_, err = env.service.Refresh(ctx, session.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "alice")

	err := env.service.ChangePassword(ctx, session.User.ID, "wrong-password", "new-password")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	err = env.service.ChangePassword(ctx, session.User.ID, testPassword, "short")
	assert.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, env.service.ChangePassword(ctx, session.User.ID, testPassword, "new-password"))

	_, err = env.service.Login(ctx, "alice@example.com", testPassword)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = env.service.Login(ctx, "alice@example.com", "new-password")
	assert.NoError(t, err)
}

func TestService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "alice")

	firstName := "  Alicia "
	dark := storage.ThemeDark
	push := true
	user, err := env.service.UpdateProfile(ctx, session.User.ID, ProfileUpdate{
		FirstName: &firstName,
		Preferences: &PreferencesUpdate{
			Theme:         &dark,
			Notifications: &NotificationsUpdate{Push: &push},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", user.FirstName)
	assert.Equal(t, "User", user.LastName)
	assert.Equal(t, storage.Preferences{
		Theme: storage.ThemeDark,
		Notifications: storage.Notifications{
			Email:     true,
			Push:      true,
			Reminders: true,
		},
		TimeZone: "UTC",
	}, user.Preferences)

	timeZone := "Europe/Riga"
	user, err = env.service.UpdatePreferences(ctx, session.User.ID, PreferencesUpdate{TimeZone: &timeZone})
	require.NoError(t, err)
	assert.Equal(t, storage.ThemeDark, user.Preferences.Theme)
	assert.Equal(t, "Europe/Riga", user.Preferences.TimeZone)

	neon := "neon"
	_, err = env.service.UpdatePreferences(ctx, session.User.ID, PreferencesUpdate{Theme: &neon})
	assert.ErrorIs(t, err, common.ErrValidation)

	empty := ""
	_, err = env.service.UpdateProfile(ctx, session.User.ID, ProfileUpdate{LastName: &empty})
	assert.ErrorIs(t, err, common.ErrValidation)

	me, err := env.service.Me(ctx, session.User.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Preferences, me.Preferences)

	_, err = env.service.Me(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestService_DeleteAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	for i, owner := range []string{alice.User.ID, alice.User.ID, bob.User.ID} {
		_, err := env.backend.Tasks().CreateTask(ctx, &storage.Task{Owner: owner, Title: "task", Position: i + 1})
		require.NoError(t, err)
	}

	err := env.service.DeleteAccount(ctx, alice.User.ID, "wrong-password")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	err = env.service.DeleteAccount(ctx, alice.User.ID, "")
	assert.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, env.service.DeleteAccount(ctx, alice.User.ID, testPassword))

	_, err = env.backend.Users().FindUserByID(ctx, alice.User.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	stats, err := env.backend.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(1), stats.Tasks)
}
