package admin

import (
	"context"
	"errors"

	"railbook/internal/users"
	"railbook/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidRole    = errors.New("invalid role")
	ErrSelfRoleChange = errors.New("admins cannot change their own role")
)

type Service interface {
	ListUsers(ctx context.Context) ([]users.User, error)
	UpdateUserRole(ctx context.Context, adminID, targetID uuid.UUID, role string) (*users.User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListUsers(ctx context.Context) ([]users.User, error) {
	return s.repo.ListUsers(ctx)
}

// UpdateUserRole promotes or demotes a user. Admins cannot change their own
// role, so the system always keeps at least the acting admin.
func (s *service) UpdateUserRole(ctx context.Context, adminID, targetID uuid.UUID, role string) (*users.User, error) {
	if !users.IsValidRole(role) {
		return nil, ErrInvalidRole
	}
	newRole := users.Role(role)
	if adminID == targetID {
		return nil, ErrSelfRoleChange
	}

	user, err := s.repo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if user.Role != newRole {
		if err := s.repo.UpdateUserRole(ctx, targetID, newRole); err != nil {
			return nil, err
		}
		logger.Info("user role updated",
			"admin_id", adminID.String(),
			"user_id", targetID.String(),
			"old_role", string(user.Role),
			"new_role", string(newRole))
		user.Role = newRole
	}

	return user, nil
}
