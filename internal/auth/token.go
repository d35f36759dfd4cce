package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/config"
)

const (
	DefaultIssuer               = "task-manager-api"
	DefaultAudience             = "task-manager-client"
	DefaultAccessTokenDuration  = 15 * time.Minute
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour
)

type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// Verification failures. Each one matches common.ErrInvalidToken.
var (
	ErrTokenMalformed                = fmt.Errorf("%w: malformed", common.ErrInvalidToken)
	ErrTokenSignatureInvalid         = fmt.Errorf("%w: signature invalid", common.ErrInvalidToken)
	ErrTokenExpired                  = fmt.Errorf("%w: expired", common.ErrInvalidToken)
	ErrTokenIssuerOrAudienceMismatch = fmt.Errorf("%w: issuer or audience mismatch", common.ErrInvalidToken)
)

type Claims struct {
	Kind     TokenKind `json:"type"`
	Username string    `json:"username,omitempty"`
	Email    string    `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

type TokenService struct {
	secret     []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	refresh    bool
	now        func() time.Time
}

func NewTokenService(config *config.AuthConfig) *TokenService {
	s := &TokenService{
		secret:     []byte(config.JWTSecret),
		issuer:     config.Issuer,
		audience:   config.Audience,
		accessTTL:  config.AccessTokenDuration,
		refreshTTL: config.RefreshTokenDuration,
		refresh:    config.RefreshTokenEnabled,
		now:        time.Now,
	}
	if s.issuer == "" {
		s.issuer = DefaultIssuer
	}
	if s.audience == "" {
		s.audience = DefaultAudience
	}
	if s.accessTTL <= 0 {
		s.accessTTL = DefaultAccessTokenDuration
	}
	if s.refreshTTL <= 0 {
		s.refreshTTL = DefaultRefreshTokenDuration
	}
	return s
}

// Issue signs a token of the given kind for subject.
func (s *TokenService) Issue(subject string, kind TokenKind, ttl time.Duration) (string, error) {
	return s.sign(&Claims{Kind: kind}, subject, ttl)
}

func (s *TokenService) sign(claims *Claims, subject string, ttl time.Duration) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// IssueAccess signs an access token carrying the user's display identity.
func (s *TokenService) IssueAccess(subject, username, email string) (string, error) {
	return s.sign(&Claims{Kind: KindAccess, Username: username, Email: email}, subject, s.accessTTL)
}

// IssuePair signs an access token and, when enabled, a refresh token.
func (s *TokenService) IssuePair(subject, username, email string) (TokenPair, error) {
	access, err := s.IssueAccess(subject, username, email)
	if err != nil {
		return TokenPair{}, err
	}

	pair := TokenPair{AccessToken: access, ExpiresIn: s.accessTTL}
	if !s.refresh {
		return pair, nil
	}

	pair.RefreshToken, err = s.Issue(subject, KindRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

func (s *TokenService) RefreshEnabled() bool {
	return s.refresh
}

func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

// Verify checks signature, expiry, issuer and audience.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, verifyError(err)
	}

	if claims.Subject == "" || (claims.Kind != KindAccess && claims.Kind != KindRefresh) {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

func verifyError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrTokenIssuerOrAudienceMismatch
	default:
		return ErrTokenMalformed
	}
}

// Decode reads the claims without verifying anything. Only for log fields.
func (s *TokenService) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
