package auth

import (
	"context"
	"testing"
	"time"

	"railbook/internal/shared/config"
	"railbook/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = uuid.New() // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetUserByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockRepository) UpdateUserPassword(ctx context.Context, userID string, hashedPassword string) error {
	args := m.Called(ctx, userID, hashedPassword)
	return args.Error(0)
}

func (m *MockRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("UsernameExists", mock.Anything, "newuser").Return(false, nil)
	mockRepo.On("CreateUser", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, testConfig())

	resp, err := service.Register(context.Background(), &RegisterRequest{
		Username: "NewUser",
		FullName: "New User",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "newuser", resp.User.Username)
	assert.Equal(t, string(users.RoleUser), resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("UsernameExists", mock.Anything, "taken").Return(true, nil)

	service := NewService(mockRepo, testConfig())

	_, err := service.Register(context.Background(), &RegisterRequest{
		Username: "taken",
		FullName: "Another One",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &users.User{
		ID:       uuid.New(),
		Username: "traveller",
		Password: string(hashed),
		Role:     users.RoleUser,
	}

	mockRepo := new(MockRepository)
	mockRepo.On("GetUserByUsername", mock.Anything, "traveller").Return(user, nil)

	service := NewService(mockRepo, testConfig())

	resp, err := service.Login(context.Background(), &LoginRequest{
		Username: "Traveller",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "traveller", resp.User.Username)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &users.User{ID: uuid.New(), Username: "traveller", Password: string(hashed)}

	mockRepo := new(MockRepository)
	mockRepo.On("GetUserByUsername", mock.Anything, "traveller").Return(user, nil)

	service := NewService(mockRepo, testConfig())

	_, err := service.Login(context.Background(), &LoginRequest{
		Username: "traveller",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUserLooksLikeBadCredentials(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, ErrUserNotFound)

	service := NewService(mockRepo, testConfig())

	_, err := service.Login(context.Background(), &LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &users.User{
		ID:       uuid.New(),
		Username: "traveller",
		Password: string(hashed),
		Role:     users.RoleAdmin,
	}

	mockRepo := new(MockRepository)
	mockRepo.On("GetUserByUsername", mock.Anything, "traveller").Return(user, nil)

	service := NewService(mockRepo, testConfig())

	resp, err := service.Login(context.Background(), &LoginRequest{
		Username: "traveller",
		Password: "secret123",
	})
	assert.NoError(t, err)

	claims, err := service.ValidateToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "traveller", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &users.User{ID: uuid.New(), Username: "traveller", Password: string(hashed)}

	mockRepo := new(MockRepository)
	mockRepo.On("GetUserByUsername", mock.Anything, "traveller").Return(user, nil)

	service := NewService(mockRepo, testConfig())

	resp, err := service.Login(context.Background(), &LoginRequest{
		Username: "traveller",
		Password: "secret123",
	})
	assert.NoError(t, err)

	// An access token must not be usable as a refresh token
	_, err = service.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_Success(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &users.User{ID: uuid.New(), Username: "traveller", Password: string(hashed)}

	mockRepo := new(MockRepository)
	mockRepo.On("GetUserByUsername", mock.Anything, "traveller").Return(user, nil)
	mockRepo.On("GetUserByID", mock.Anything, user.ID.String()).Return(user, nil)

	service := NewService(mockRepo, testConfig())

	resp, err := service.Login(context.Background(), &LoginRequest{
		Username: "traveller",
		Password: "secret123",
	})
	assert.NoError(t, err)

	pair, err := service.RefreshToken(context.Background(), resp.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}
