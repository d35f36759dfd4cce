package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elskow/tasktrack/internal/common"
)

func newTestTokenService(clock *testClock) *TokenService {
	s := NewTokenService(newTestConfig())
	s.now = clock.Now
	return s
}

func TestTokenService_RoundTrip(t *testing.T) {
	clock := newTestClock()
	tokens := newTestTokenService(clock)

	tests := []struct {
		name string
		kind TokenKind
		ttl  time.Duration
	}{
		{name: "access", kind: KindAccess, ttl: 15 * time.Minute},
		{name: "refresh", kind: KindRefresh, ttl: 7 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.Issue("user-1", tt.kind, tt.ttl)
			require.NoError(t, err)

			claims, err := tokens.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.Subject)
			assert.Equal(t, tt.kind, claims.Kind)
			assert.Equal(t, DefaultIssuer, claims.Issuer)
			assert.Equal(t, jwt.ClaimStrings{DefaultAudience}, claims.Audience)
			assert.Equal(t, clock.Now().Add(tt.ttl), claims.ExpiresAt.Time.UTC())
		})
	}
}

func TestTokenService_IssuePair(t *testing.T) {
	tokens := newTestTokenService(newTestClock())

	pair, err := tokens.IssuePair("user-1", "alice", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, pair.ExpiresIn)

	access, err := tokens.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, KindAccess, access.Kind)
	assert.Equal(t, "alice", access.Username)
	assert.Equal(t, "alice@example.com", access.Email)

	refresh, err := tokens.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, KindRefresh, refresh.Kind)
	assert.Empty(t, refresh.Username)

	cfg := newTestConfig()
	cfg.RefreshTokenEnabled = false
	pair, err = NewTokenService(cfg).IssuePair("user-1", "alice", "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Empty(t, pair.RefreshToken)
}

func TestTokenService_Expiry(t *testing.T) {
	clock := newTestClock()
	tokens := newTestTokenService(clock)

	token, err := tokens.Issue("user-1", KindAccess, 15*time.Minute)
	require.NoError(t, err)

	clock.Advance(14 * time.Minute)
	_, err = tokens.Verify(token)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenService_VerifyFailures(t *testing.T) {
	clock := newTestClock()
	tokens := newTestTokenService(clock)

	otherSecret := newTestConfig()
	otherSecret.JWTSecret = "another-secret"
	forged := NewTokenService(otherSecret)
	forged.now = clock.Now

	otherIssuer := newTestConfig()
	otherIssuer.Issuer = "someone-else"
	wrongIssuer := NewTokenService(otherIssuer)
	wrongIssuer.now = clock.Now

	otherAudience := newTestConfig()
	otherAudience.Audience = "another-client"
	wrongAudience := NewTokenService(otherAudience)
	wrongAudience.now = clock.Now

	mustIssue := func(s *TokenService) string {
		token, err := s.Issue("user-1", KindAccess, time.Minute)
		require.NoError(t, err)
		return token
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Kind: KindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    DefaultIssuer,
			Audience:  jwt.ClaimStrings{DefaultAudience},
			ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Minute)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noKind, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    DefaultIssuer,
			Audience:  jwt.ClaimStrings{DefaultAudience},
			ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Minute)),
		},
	}).SignedString([]byte(newTestConfig().JWTSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage", token: "not-a-token", wantErr: ErrTokenMalformed},
		{name: "wrong secret", token: mustIssue(forged), wantErr: ErrTokenSignatureInvalid},
		{name: "none algorithm", token: unsigned, wantErr: ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: mustIssue(wrongIssuer), wantErr: ErrTokenIssuerOrAudienceMismatch},
		{name: "wrong audience", token: mustIssue(wrongAudience), wantErr: ErrTokenIssuerOrAudienceMismatch},
		{name: "missing kind", token: noKind, wantErr: ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}

func TestTokenService_Decode(t *testing.T) {
	clock := newTestClock()
	tokens := newTestTokenService(clock)

	token, err := tokens.Issue("user-1", KindRefresh, time.Minute)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	claims, err := tokens.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, KindRefresh, claims.Kind)

	_, err = tokens.Decode("nope")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
