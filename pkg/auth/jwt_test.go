package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("sitekeeper-master", "sitekeeper-agents", "test-secret-0123456789",
		15*time.Minute, 7*24*time.Hour)
}

func TestIssueAndValidate(t *testing.T) {
	s := newTestService()

	pair, err := s.IssuePair("web-01")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Greater(t, pair.ExpiresAt, time.Now().Unix())

	node, err := s.ValidateAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "web-01", node)
}

func TestRefreshTokenRejectedOnConnect(t *testing.T) {
	s := newTestService()
	pair, err := s.IssuePair("web-01")
	require.NoError(t, err)

	_, err = s.ValidateAccess(pair.RefreshToken)
	require.ErrorIs(t, err, ErrWrongTokenKind)
}

func TestRefreshMintsNewPair(t *testing.T) {
	s := newTestService()
	pair, err := s.IssuePair("db-02")
	require.NoError(t, err)

	renewed, err := s.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	node, err := s.ValidateAccess(renewed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "db-02", node)
}

func TestAccessTokenCannotRefresh(t *testing.T) {
	s := newTestService()
	pair, err := s.IssuePair("web-01")
	require.NoError(t, err)

	_, err = s.Refresh(pair.AccessToken)
	require.ErrorIs(t, err, ErrWrongTokenKind)
}

func TestExpiredTokenRejected(t *testing.T) {
	s := NewService("sitekeeper-master", "sitekeeper-agents", "test-secret-0123456789",
		-time.Minute, time.Hour)
	pair, err := s.IssuePair("web-01")
	require.NoError(t, err)

	_, err = s.ValidateAccess(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestForeignSignatureRejected(t *testing.T) {
	s := newTestService()
	other := NewService("sitekeeper-master", "sitekeeper-agents", "another-secret",
		15*time.Minute, time.Hour)

	pair, err := other.IssuePair("web-01")
	require.NoError(t, err)

	_, err = s.ValidateAccess(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongAudienceRejected(t *testing.T) {
	s := newTestService()
	other := NewService("sitekeeper-master", "someone-else", "test-secret-0123456789",
		15*time.Minute, time.Hour)

	pair, err := other.IssuePair("web-01")
	require.NoError(t, err)

	_, err = s.ValidateAccess(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	s := newTestService()
	_, err := s.ValidateAccess("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
