package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
)

type Outcome int

const (
	Unauthenticated Outcome = iota
	Authenticated
	Rejected
)

// Reason values are stable and safe to show to clients.
type Reason string

const (
	ReasonInvalidToken   Reason = "invalid_token"
	ReasonTokenExpired   Reason = "token_expired"
	ReasonWrongTokenKind Reason = "wrong_token_kind"
	ReasonUserNotFound   Reason = "user_not_found"
	ReasonAccountLocked  Reason = "account_locked"
)

type Resolution struct {
	Outcome Outcome
	Reason  Reason
	User    *storage.User
}

// Guard turns a bearer token into a live identity.
type Guard struct {
	tokens *TokenService
	users  storage.UserStore
	log    *zap.Logger
	now    func() time.Time
}

func NewGuard(tokens *TokenService, backend storage.Backend, log *zap.Logger) *Guard {
	return &Guard{
		tokens: tokens,
		users:  backend.Users(),
		log:    log,
		now:    time.Now,
	}
}

// Resolve returns an error only when the user lookup itself fails.
func (g *Guard) Resolve(ctx context.Context, token string) (Resolution, error) {
	if token == "" {
		return Resolution{Outcome: Unauthenticated}, nil
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		reason := ReasonInvalidToken
		if errors.Is(err, ErrTokenExpired) {
			reason = ReasonTokenExpired
		}
		g.log.Debug("token rejected", zap.String("reason", string(reason)), zap.Error(err))
		return reject(reason), nil
	}
	if claims.Kind != KindAccess {
		return reject(ReasonWrongTokenKind), nil
	}

	user, err := g.users.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return reject(ReasonUserNotFound), nil
		}
		return Resolution{}, err
	}
	if user.IsLocked(g.now()) {
		return reject(ReasonAccountLocked), nil
	}

	return Resolution{Outcome: Authenticated, User: user}, nil
}

func reject(reason Reason) Resolution {
	return Resolution{Outcome: Rejected, Reason: reason}
}

// Err converts a non-authenticated resolution into the matching domain error.
func (r Resolution) Err() error {
	switch r.Outcome {
	case Authenticated:
		return nil
	case Rejected:
		if r.Reason == ReasonAccountLocked {
			return common.ErrAccountLocked
		}
		return &RejectedError{Reason: r.Reason}
	default:
		return common.ErrUnauthenticated
	}
}

type RejectedError struct {
	Reason Reason
}

func (e *RejectedError) Error() string {
	return common.ErrUnauthenticated.Error() + ": " + string(e.Reason)
}

func (e *RejectedError) Unwrap() error {
	return common.ErrUnauthenticated
}
