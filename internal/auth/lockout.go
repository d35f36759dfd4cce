package auth

import (
	"time"

	"github.com/elskow/tasktrack/internal/storage"
)

const (
	DefaultMaxLoginAttempts = 5
	DefaultLockDuration     = 2 * time.Hour
)

// LockoutPolicy drives the per-account lockout state. It holds no state of
// its own; callers persist the returned LockoutState.
type LockoutPolicy struct {
	MaxAttempts  int
	LockDuration time.Duration
}

func NewLockoutPolicy(maxAttempts int, lockDuration time.Duration) LockoutPolicy {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxLoginAttempts
	}
	if lockDuration <= 0 {
		lockDuration = DefaultLockDuration
	}
	return LockoutPolicy{MaxAttempts: maxAttempts, LockDuration: lockDuration}
}

// Evaluate returns the state in effect at now. An expired lock reads as a
// fresh unlocked state.
func (p LockoutPolicy) Evaluate(state storage.LockoutState, now time.Time) (storage.LockoutState, bool) {
	if state.Locked(now) {
		return state, true
	}
	if state.LockUntil != nil {
		return storage.LockoutState{}, false
	}
	return state, false
}

// Fail records one failed attempt against an unlocked state.
func (p LockoutPolicy) Fail(state storage.LockoutState, now time.Time) storage.LockoutState {
	attempts := state.Attempts + 1
	if attempts < p.MaxAttempts {
		return storage.LockoutState{Attempts: attempts}
	}

	until := now.Add(p.LockDuration)
	return storage.LockoutState{Attempts: attempts, LockUntil: &until}
}

func (p LockoutPolicy) Succeed() storage.LockoutState {
	return storage.LockoutState{}
}
