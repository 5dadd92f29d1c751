package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/more-experts/support-portal/internal/auth"
	"github.com/more-experts/support-portal/internal/config"
	apperrors "github.com/more-experts/support-portal/pkg/util"
)

func newAuthFixture() *AuthService {
	return NewAuthService(config.Config{
		Auth:  config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 15},
		Admin: config.AdminConfig{Email: "admin@more-experts.com", Password: "hunter2"},
	})
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newAuthFixture()

	token, expiresAt, err := svc.Login("ADMIN@More-Experts.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, auth.SubjectAdmin, claims.Subject)
	assert.Equal(t, "admin@more-experts.com", claims.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture()

	cases := []struct{ email, password string }{
		{"admin@more-experts.com", "wrong"},
		{"intruder@example.com", "hunter2"},
		{"", ""},
	}
	for _, tc := range cases {
		_, _, err := svc.Login(tc.email, tc.password)
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := newAuthFixture()

	_, err := svc.TokenManager().ParseToken("not-a-jwt")
	require.Error(t, err)
}
