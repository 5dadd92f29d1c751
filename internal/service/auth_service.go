package service

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/more-experts/support-portal/internal/auth"
	"github.com/more-experts/support-portal/internal/config"
	apperrors "github.com/more-experts/support-portal/pkg/util"
)

// AuthService validates the configured back-office credential pair and issues
// session tokens. There is exactly one admin identity; roles are out of scope.
type AuthService struct {
	admin  config.AdminConfig
	tokens *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.Config) *AuthService {
	return &AuthService{
		admin:  cfg.Admin,
		tokens: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Login checks the credential pair and returns a signed session token.
func (s *AuthService) Login(email, password string) (string, time.Time, error) {
	emailOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(email))),
		[]byte(strings.ToLower(s.admin.Email)),
	) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	if !emailOK || !passwordOK {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.tokens.GenerateToken(s.admin.Email)
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
