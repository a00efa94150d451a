package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"restaurantBackoffice/internal/modules/auth/application/port"
	users "restaurantBackoffice/internal/modules/users/domain"
	"restaurantBackoffice/internal/shared/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult is returned to the client after a successful login.
type LoginResult struct {
	Token string           `json:"token"`
	User  users.PublicUser `json:"user"`
}

type AuthUseCase struct {
	users  port.UserFinder
	tokens port.TokenIssuer
}

func NewAuthUseCase(users port.UserFinder, tokens port.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

// Login checks the password against the stored bcrypt hash and issues a
// token. Unknown emails and wrong passwords fail the same way.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, ok, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if !ok {
		slog.Debug("login rejected: unknown email", slog.String("email", email))
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		slog.Debug("login rejected: password mismatch", slog.String("userId", user.ID))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return LoginResult{}, err
	}
	slog.Info("user logged in", slog.String("userId", user.ID), slog.String("role", user.Role))
	return LoginResult{Token: token, User: user.Public()}, nil
}

// Verify returns the identity carried by token, failing with
// auth.ErrMissingToken or auth.ErrInvalidToken.
func (uc *AuthUseCase) Verify(token string) (*auth.Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, auth.ErrMissingToken
	}
	return uc.tokens.Validate(token)
}
