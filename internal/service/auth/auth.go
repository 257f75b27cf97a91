// internal/service/auth/auth_service.go
package auth

import (
	"context"
	"errors"
	"fmt"

	"bookings-service/internal/domain/auth"
	"bookings-service/internal/domain/user"
	xerrors "bookings-service/internal/pkg/errors"
	"bookings-service/internal/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the credential store the auth flow needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *user.User) error
}

type AuthService struct {
	users  UserStore
	tokens *jwt.Generator
	logger *zap.Logger
}

func NewAuthService(users UserStore, tokens *jwt.Generator, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Login authenticates a user with email/password and issues a token. The
// failure message never reveals which of the two was wrong.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.Unauthorized("Invalid email or password")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, xerrors.Unauthorized("Invalid email or password")
	}

	token, err := s.tokens.Generate(u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in", zap.Int64("user_id", u.ID))

	return &auth.LoginResponse{
		Token:     token,
		ID:        u.ID,
		Username:  u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Admin:     u.Admin,
	}, nil
}

// Register creates a new account with a bcrypt-encoded password.
func (s *AuthService) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.MessageResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, xerrors.BadRequest("Error: Email is already taken!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashed),
		Admin:     false,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.Int64("user_id", u.ID))

	return &auth.MessageResponse{Message: "User registered successfully!"}, nil
}
