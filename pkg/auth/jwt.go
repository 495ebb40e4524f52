// Package auth mints and validates the JWTs agents use on the hub: a
// short-lived access token presented on websocket connect and a long-lived
// refresh token honored across reconnects.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds. A refresh token is only accepted by Refresh, never on connect.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

var (
	// ErrInvalidToken covers malformed, mis-signed, expired and
	// wrong-audience tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrWrongTokenKind is returned when an access token is presented where
	// a refresh token is required, or the other way around.
	ErrWrongTokenKind = errors.New("wrong token kind")
)

// Claims are the agent token claims. Subject carries the node name.
type Claims struct {
	jwt.RegisteredClaims
	Kind string `json:"kind"`
}

// TokenPair is what an agent receives at registration.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// Service signs and validates agent tokens with a shared HMAC secret.
type Service struct {
	issuer     string
	audience   string
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewService creates a token service.
func NewService(issuer, audience, secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		issuer:     issuer,
		audience:   audience,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair mints an access/refresh token pair for a node.
func (s *Service) IssuePair(node string) (TokenPair, error) {
	now := time.Now().UTC()
	accessExpiry := now.Add(s.accessTTL)

	access, err := s.sign(node, KindAccess, now, accessExpiry)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.sign(node, KindRefresh, now, now.Add(s.refreshTTL))
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpiry.Unix(),
	}, nil
}

// ValidateAccess checks an access token and returns the node it was issued
// to.
func (s *Service) ValidateAccess(token string) (string, error) {
	return s.validate(token, KindAccess)
}

// Refresh validates a refresh token and mints a fresh pair for its node.
func (s *Service) Refresh(refreshToken string) (TokenPair, error) {
	node, err := s.validate(refreshToken, KindRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return s.IssuePair(node)
}

func (s *Service) sign(node, kind string, now, expiry time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			Subject:   node,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
		Kind: kind,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) validate(token, kind string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{},
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	if claims.Kind != kind {
		return "", fmt.Errorf("%w: got %q, want %q", ErrWrongTokenKind, claims.Kind, kind)
	}
	return claims.Subject, nil
}
