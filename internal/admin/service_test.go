package admin

import (
	"context"
	"testing"

	"railbook/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]users.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]users.User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockRepository) UpdateUserRole(ctx context.Context, id uuid.UUID, role users.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func TestUpdateUserRole_PromotesUser(t *testing.T) {
	mockRepo := new(MockRepository)

	adminID := uuid.New()
	targetID := uuid.New()
	target := &users.User{ID: targetID, Username: "traveller", Role: users.RoleUser}

	mockRepo.On("GetUserByID", mock.Anything, targetID).Return(target, nil)
	mockRepo.On("UpdateUserRole", mock.Anything, targetID, users.RoleAdmin).Return(nil)

	service := NewService(mockRepo)

	updated, err := service.UpdateUserRole(context.Background(), adminID, targetID, "ADMIN")

	assert.NoError(t, err)
	assert.Equal(t, users.RoleAdmin, updated.Role)
}

func TestUpdateUserRole_SelfChangeForbidden(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	adminID := uuid.New()

	_, err := service.UpdateUserRole(context.Background(), adminID, adminID, "USER")

	assert.ErrorIs(t, err, ErrSelfRoleChange)
	mockRepo.AssertNotCalled(t, "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUserRole_InvalidRole(t *testing.T) {
	service := NewService(new(MockRepository))

	_, err := service.UpdateUserRole(context.Background(), uuid.New(), uuid.New(), "SUPERUSER")

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpdateUserRole_SameRoleSkipsWrite(t *testing.T) {
	mockRepo := new(MockRepository)

	targetID := uuid.New()
	target := &users.User{ID: targetID, Username: "traveller", Role: users.RoleUser}
	mockRepo.On("GetUserByID", mock.Anything, targetID).Return(target, nil)

	service := NewService(mockRepo)

	updated, err := service.UpdateUserRole(context.Background(), uuid.New(), targetID, "USER")

	assert.NoError(t, err)
	assert.Equal(t, users.RoleUser, updated.Role)
	mockRepo.AssertNotCalled(t, "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUserRole_UserNotFound(t *testing.T) {
	mockRepo := new(MockRepository)

	targetID := uuid.New()
	mockRepo.On("GetUserByID", mock.Anything, targetID).Return(nil, ErrUserNotFound)

	service := NewService(mockRepo)

	_, err := service.UpdateUserRole(context.Background(), uuid.New(), targetID, "ADMIN")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
