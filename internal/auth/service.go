package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/storage"
	"github.com/elskow/tasktrack/internal/syncx"
)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Session is what a successful register or login hands back.
type Session struct {
	User   *storage.User
	Tokens TokenPair
}

type NotificationsUpdate struct {
	Email     *bool
	Push      *bool
	Reminders *bool
}

type PreferencesUpdate struct {
	Theme         *string
	Notifications *NotificationsUpdate
	TimeZone      *string
}

type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	Preferences *PreferencesUpdate
}

type Service struct {
	config  *config.AuthConfig
	log     *zap.Logger
	backend storage.Backend
	tokens  *TokenService
	hasher  *PasswordHasher
	lockout LockoutPolicy
	locks   *syncx.KeyedMutex
	now     func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

type Option func(*Service)

// WithClock overrides the clock used for lockout decisions.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	config *config.AuthConfig,
	log *zap.Logger,
	backend storage.Backend,
	tokens *TokenService,
	opts ...Option,
) *Service {
	s := &Service{
		config:  config,
		log:     log,
		backend: backend,
		tokens:  tokens,
		hasher:  NewPasswordHasher(config.PasswordCost),
		lockout: NewLockoutPolicy(config.MaxLoginAttempts, config.LockDuration),
		locks:   syncx.NewKeyedMutex(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	if err := validateRegistration(&in); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.backend.Users().CreateUser(ctx, &storage.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         storage.RoleUser,
		Preferences:  storage.DefaultPreferences(),
	})
	if err != nil {
		return nil, err
	}

	tokens, err := s.tokens.IssuePair(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username))

	return &Session{User: user, Tokens: tokens}, nil
}

// Login checks the credentials against the account's lockout state. Unknown
// emails and wrong passwords fail the same way.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalid("email and password are required")
	}

	found, err := s.backend.Users().FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.Compare(s.dummy(), password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	unlock := s.locks.Lock(found.ID)
	defer unlock()

	user, err := s.backend.Users().FindUserByID(ctx, found.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	now := s.now().UTC()
	state, locked := s.lockout.Evaluate(user.Lockout, now)
	if locked {
		s.log.Warn("login attempt on locked account",
			zap.String("user_id", user.ID),
			zap.Time("lock_until", *state.LockUntil))
		return nil, fmt.Errorf("%w until %s", common.ErrAccountLocked, state.LockUntil.Format(time.RFC3339))
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		next := s.lockout.Fail(state, now)
		if _, err := s.backend.Users().UpdateUser(ctx, user.ID, storage.UserUpdate{Lockout: &next}); err != nil {
			return nil, err
		}
		if next.LockUntil != nil {
			s.log.Warn("account locked after failed logins",
				zap.String("user_id", user.ID),
				zap.Int("attempts", next.Attempts))
		}
		return nil, common.ErrInvalidCredentials
	}

	cleared := s.lockout.Succeed()
	user, err = s.backend.Users().UpdateUser(ctx, user.ID, storage.UserUpdate{
		Lockout:   &cleared,
		LastLogin: &now,
	})
	if err != nil {
		return nil, err
	}

	tokens, err := s.tokens.IssuePair(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID))
	return &Session{User: user, Tokens: tokens}, nil
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("timing-equalizer")
		if err != nil {
			s.log.Error("failed to prepare dummy hash", zap.Error(err))
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

// Refresh exchanges a refresh token for a new access token. The refresh token
// itself is not rotated.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if !s.tokens.RefreshEnabled() {
		return TokenPair{}, fmt.Errorf("%w: refresh tokens are disabled", common.ErrInvalidToken)
	}

	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return TokenPair{}, fmt.Errorf("%w: refresh token required", common.ErrInvalidToken)
	}

	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	if claims.Kind != KindRefresh {
		return TokenPair{}, fmt.Errorf("%w: wrong token kind", common.ErrInvalidToken)
	}

	user, err := s.backend.Users().FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return TokenPair{}, common.ErrUserNotFound
		}
		return TokenPair{}, err
	}
	if user.IsLocked(s.now()) {
		return TokenPair{}, common.ErrAccountLocked
	}

	access, err := s.tokens.IssueAccess(user.ID, user.Username, user.Email)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, ExpiresIn: s.tokens.AccessTTL()}, nil
}

// Logout has nothing to revoke; tokens are stateless and clients discard them.
func (s *Service) Logout(_ context.Context, userID string) {
	s.log.Info("user logged out", zap.String("user_id", userID))
}

func (s *Service) Me(ctx context.Context, userID string) (*storage.User, error) {
	return s.findUser(ctx, userID)
}

func (s *Service) findUser(ctx context.Context, userID string) (*storage.User, error) {
	user, err := s.backend.Users().FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" {
		return invalid("current password is required")
	}
	if err := validatePassword(next); err != nil {
		return err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Compare(user.PasswordHash, current) {
		return common.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}
	if _, err := s.backend.Users().UpdateUser(ctx, user.ID, storage.UserUpdate{PasswordHash: &hash}); err != nil {
		return err
	}

	s.log.Info("password changed", zap.String("user_id", user.ID))
	return nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*storage.User, error) {
	var update storage.UserUpdate
	if in.FirstName != nil {
		if err := validateName("first name", *in.FirstName); err != nil {
			return nil, err
		}
		firstName := strings.TrimSpace(*in.FirstName)
		update.FirstName = &firstName
	}
	if in.LastName != nil {
		if err := validateName("last name", *in.LastName); err != nil {
			return nil, err
		}
		lastName := strings.TrimSpace(*in.LastName)
		update.LastName = &lastName
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Preferences != nil {
		merged, err := mergePreferences(user.Preferences, *in.Preferences)
		if err != nil {
			return nil, err
		}
		update.Preferences = &merged
	}

	return s.backend.Users().UpdateUser(ctx, user.ID, update)
}

func (s *Service) UpdatePreferences(ctx context.Context, userID string, in PreferencesUpdate) (*storage.User, error) {
	return s.UpdateProfile(ctx, userID, ProfileUpdate{Preferences: &in})
}

func mergePreferences(current storage.Preferences, in PreferencesUpdate) (storage.Preferences, error) {
	merged := current
	if in.Theme != nil {
		if err := validateTheme(*in.Theme); err != nil {
			return merged, err
		}
		merged.Theme = *in.Theme
	}
	if in.TimeZone != nil {
		timeZone := strings.TrimSpace(*in.TimeZone)
		if timeZone == "" {
			return merged, invalid("time zone cannot be empty")
		}
		merged.TimeZone = timeZone
	}
	if n := in.Notifications; n != nil {
		if n.Email != nil {
			merged.Notifications.Email = *n.Email
		}
		if n.Push != nil {
			merged.Notifications.Push = *n.Push
		}
		if n.Reminders != nil {
			merged.Notifications.Reminders = *n.Reminders
		}
	}
	return merged, nil
}

// DeleteAccount removes the user and every task they own once the password
// is confirmed.
func (s *Service) DeleteAccount(ctx context.Context, userID, password string) error {
	if password == "" {
		return invalid("password is required to delete the account")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Compare(user.PasswordHash, password) {
		return common.ErrInvalidCredentials
	}

	unlock := s.locks.Lock(user.ID)
	defer unlock()

	var removed int64
	err = s.backend.Atomically(ctx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		if removed, err = tx.Tasks().DeleteTasksByOwner(ctx, user.ID); err != nil {
			return err
		}
		return tx.Users().DeleteUser(ctx, user.ID)
	})
	if err != nil {
		return err
	}

	s.log.Info("account deleted",
		zap.String("user_id", user.ID),
		zap.Int64("tasks_deleted", removed))
	return nil
}
