// internal/service/user/user_service.go
package user

import (
	"context"
	"errors"
	"fmt"

	"bookings-service/internal/domain/user"
	xerrors "bookings-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type UserStore interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
	Delete(ctx context.Context, id int64) error
}

type UserService struct {
	users  UserStore
	logger *zap.Logger
}

func NewUserService(users UserStore, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.NotFound("User not found")
		}
		return nil, err
	}
	return u, nil
}

// Delete removes an account, but only the account of the requester. The
// email comparison is exact: differing case is a different principal.
func (s *UserService) Delete(ctx context.Context, id int64, requesterEmail string) error {
	u, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if u.Email != requesterEmail {
		return xerrors.BadRequest("Unauthorized: You can only delete your own account")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted own account", zap.Int64("user_id", id))
	return nil
}
