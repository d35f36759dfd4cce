package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elskow/tasktrack/internal/common"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{name: "valid password", password: "testpassword123"},
		{name: "unicode password", password: "pässwörd-✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			require.NoError(t, err)

			assert.NotEqual(t, tt.password, hash)
			assert.True(t, hasher.Compare(hash, tt.password))
			assert.False(t, hasher.Compare(hash, tt.password+"x"))
		})
	}
}

func TestPasswordHasher_TooLong(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestNewPasswordHasher_DefaultCost(t *testing.T) {
	assert.Equal(t, DefaultPasswordCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewPasswordHasher(bcrypt.MinCost).cost)
}
