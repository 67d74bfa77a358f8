package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace-api/internal/auth"
	"marketplace-api/internal/model"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u model.User) (model.User, error)
}

type AuthService struct {
	users        UserStore
	tokens       *auth.TokenManager
	passwordCost int
	// missHash is compared against on unknown emails so both login failures cost one bcrypt run.
	missHash string
}

func NewAuthService(users UserStore, tokens *auth.TokenManager, passwordCost int) (*AuthService, error) {
	if users == nil || tokens == nil {
		return nil, errors.New("auth service requires a user store and a token manager")
	}

	missHash, err := auth.HashPassword("unused-login-placeholder", passwordCost)
	if err != nil {
		return nil, fmt.Errorf("prepare placeholder hash: %w", err)
	}

	return &AuthService{
		users:        users,
		tokens:       tokens,
		passwordCost: passwordCost,
		missHash:     missHash,
	}, nil
}

// Login verifies the credential and issues a session token. Unknown email and
// wrong password both return model.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, model.ErrUserNotFound) {
		auth.VerifyPassword(password, s.missHash)
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	return token, nil
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	surname := strings.TrimSpace(req.Surname)

	if email == "" || req.Password == "" || name == "" || surname == "" {
		return model.User{}, fmt.Errorf("register: %w", model.ErrInvalidInput)
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.User{}, fmt.Errorf("register: %w", err)
	}
	if exists {
		return model.User{}, model.ErrUserAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password, s.passwordCost)
	if err != nil {
		return model.User{}, fmt.Errorf("register: %w", err)
	}

	// The unique index still decides races between concurrent registrations.
	user, err := s.users.Create(ctx, model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Surname:      surname,
	})
	if errors.Is(err, model.ErrUserAlreadyExists) {
		return model.User{}, model.ErrUserAlreadyExists
	}
	if err != nil {
		return model.User{}, fmt.Errorf("register: %w", err)
	}

	return user, nil
}

// ValidateToken is used by the auth middleware.
func (s *AuthService) ValidateToken(token string) (*model.Claims, error) {
	return s.tokens.Verify(token)
}

// Profile loads the caller's user record by id. A token whose email no longer
// matches that user is treated as not found.
func (s *AuthService) Profile(ctx context.Context, claims *model.Claims) (model.Profile, error) {
	if claims == nil || claims.Email == "" || claims.ID <= 0 {
		return model.Profile{}, model.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, claims.ID)
	if err != nil {
		return model.Profile{}, fmt.Errorf("profile: %w", err)
	}
	if user.Email != claims.Email {
		return model.Profile{}, fmt.Errorf("profile: %w", model.ErrUserNotFound)
	}

	return user.Profile(), nil
}
