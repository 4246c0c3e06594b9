package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/authkit/authkit-go/internal/crypto"
	"github.com/authkit/authkit-go/internal/model"
	"github.com/authkit/authkit-go/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the persistence contract the auth service depends on.
// *repository.UserRepository satisfies it; tests substitute an in-memory
// implementation. Create must enforce email uniqueness atomically.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// AuthService orchestrates registration and login. It expects shape-checked
// input — field validation happens in the HTTP layer before it runs.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns a session token. The
// lookup is a fast path for the common case; a registration racing past it
// still loses at the storage layer's unique constraint and surfaces here as
// ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return model.AuthResponse{}, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return model.AuthResponse{}, fmt.Errorf("looking up email: %w", err)
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, fmt.Errorf("creating user: %w", err)
	}

	return s.respond(user)
}

// Login authenticates a user and returns a session token. An unknown email
// and a wrong password produce the same ErrInvalidCredentials — callers must
// not be able to tell which one happened.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, fmt.Errorf("looking up email: %w", err)
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.respond(user)
}

// GetUser retrieves the safe projection of a user by ID.
func (s *AuthService) GetUser(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *AuthService) respond(user *model.User) (model.AuthResponse, error) {
	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("signing token: %w", err)
	}

	return model.AuthResponse{
		Token: token,
		User: model.UserResponse{
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}
