package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/medidea/medidea-api/internal/errors"

	"github.com/medidea/medidea-api/internal/data"
	"github.com/medidea/medidea-api/internal/domain/auth"
	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  ports.UserRepository
	Tokens ports.TokenAuthority
}

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenAuthority
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{users: opts.Users, tokens: opts.Tokens}
}

// LoginResult contains the issued token and the authenticated user.
type LoginResult struct {
	Token string
	User  *model.User
}

// Login checks the email/password pair and issues a signed token.
// Unknown email and wrong password produce the same error so callers
// cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.Unauthorized("invalid credentials")
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(auth.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Me returns the account behind a verified token's user ID.
func (s *AuthService) Me(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.Unauthorized("account no longer exists")
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}
	return user, nil
}
