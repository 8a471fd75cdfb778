package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/auth"
	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/repo"
)

// ErrInvalidCredentials is returned by Login for both unknown emails and
// wrong passwords, so responses do not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService implements signup and login.
type AuthService struct {
	users  repo.UserRepo
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repo.UserRepo, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// SignUp registers a new account and returns the stored user plus a signed
// access token. Email is normalized to lowercase before storage so lookups
// are case-insensitive.
// Returns domain.ErrDuplicateKey when the email is already registered and
// domain.ErrValidation for bad input.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return domain.User{}, "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return domain.User{}, "", fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < 6 {
		return domain.User{}, "", fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique email index rejects duplicates atomically; checking first
	// would only race.
	stored, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.SignUp: %w", err)
	}

	token, err := s.tokens.Generate(stored.ID.String())
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.SignUp: %w", err)
	}
	return stored, token, nil
}

// Login verifies the credentials and returns the user plus a signed access
// token. Returns ErrInvalidCredentials for unknown emails and for wrong
// passwords alike.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if err := s.hasher.Verify(user.PasswordHash, password); err != nil {
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return user, token, nil
}

// GetUser returns the account for an authenticated user id.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.GetUser: %w", err)
	}
	return user, nil
}
