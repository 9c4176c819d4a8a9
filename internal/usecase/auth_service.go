package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/courtdesk/basketref/internal/domain/user"
)

// AuthService checks login attempts against the configured account
// directory. The directory is immutable after construction.
type AuthService struct {
	byUsername map[string]user.Credential
}

func NewAuthService(credentials []user.Credential) *AuthService {
	byUsername := make(map[string]user.Credential, len(credentials))
	for _, c := range credentials {
		byUsername[strings.ToLower(c.Username)] = c
	}

	return &AuthService{byUsername: byUsername}
}

// Login verifies a username/password pair. Failures are indistinguishable
// between unknown user and wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (user.Principal, error) {
	ctx, span := startSpan(ctx, "usecase.AuthService.Login")
	defer span.End()
	_ = ctx

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return user.Principal{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	credential, ok := s.byUsername[username]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword(credential.PasswordHash, []byte(password)); err != nil {
		return user.Principal{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return user.Principal{Username: credential.Username, Role: credential.Role}, nil
}
