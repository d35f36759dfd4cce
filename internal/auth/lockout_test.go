package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elskow/tasktrack/internal/storage"
)

func TestLockoutPolicy_Fail(t *testing.T) {
	policy := NewLockoutPolicy(0, 0)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	state := storage.LockoutState{}
	for i := 1; i < DefaultMaxLoginAttempts; i++ {
		state = policy.Fail(state, now)
		assert.Equal(t, i, state.Attempts)
		assert.Nil(t, state.LockUntil)
	}

	state = policy.Fail(state, now)
	assert.Equal(t, DefaultMaxLoginAttempts, state.Attempts)
	require.NotNil(t, state.LockUntil)
	assert.Equal(t, now.Add(2*time.Hour), *state.LockUntil)
}

func TestLockoutPolicy_Evaluate(t *testing.T) {
	policy := NewLockoutPolicy(5, 2*time.Hour)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name       string
		state      storage.LockoutState
		wantLocked bool
		wantState  storage.LockoutState
	}{
		{
			name:      "fresh",
			state:     storage.LockoutState{},
			wantState: storage.LockoutState{},
		},
		{
			name:      "counting",
			state:     storage.LockoutState{Attempts: 3},
			wantState: storage.LockoutState{Attempts: 3},
		},
		{
			name:       "locked",
			state:      storage.LockoutState{Attempts: 5, LockUntil: &future},
			wantLocked: true,
			wantState:  storage.LockoutState{Attempts: 5, LockUntil: &future},
		},
		{
			name:      "lock expired",
			state:     storage.LockoutState{Attempts: 5, LockUntil: &past},
			wantState: storage.LockoutState{},
		},
		{
			name:      "lock expires exactly now",
			state:     storage.LockoutState{Attempts: 5, LockUntil: &now},
			wantState: storage.LockoutState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, locked := policy.Evaluate(tt.state, now)
			assert.Equal(t, tt.wantLocked, locked)
			assert.Equal(t, tt.wantState, state)
		})
	}
}

func TestLockoutPolicy_Succeed(t *testing.T) {
	assert.Equal(t, storage.LockoutState{}, NewLockoutPolicy(5, time.Hour).Succeed())
}
