package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/OmarZuritaEC/vitalgym/internal/auth"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, lastName, email, passwordHash, role string) (*User, error) {
	args := m.Called(ctx, name, lastName, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter string, page, perPage int) ([]User, int, error) {
	args := m.Called(ctx, filter, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]User), args.Int(1), args.Error(2)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, "test-secret")

	req := RegisterRequest{
		Name:     "Edwin",
		LastName: "Ibarra",
		Email:    "edwin@vitalgym.com",
		Password: "super-secret-pass",
	}

	mockRepo.On("EmailExists", mock.Anything, req.Email).Return(false, nil)
	mockRepo.On("Create", mock.Anything, "Edwin", "Ibarra", req.Email, mock.Anything, "staff").
		Return(&User{ID: 1, Name: "Edwin", LastName: "Ibarra", Email: req.Email, Role: "staff"}, nil)

	user, accessToken, refreshToken, err := svc.Register(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "staff", user.Role)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	mockRepo.AssertExpectations(t)
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, "test-secret")

	mockRepo.On("EmailExists", mock.Anything, "taken@vitalgym.com").Return(true, nil)

	_, _, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Edwin",
		LastName: "Ibarra",
		Email:    "taken@vitalgym.com",
		Password: "super-secret-pass",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Login(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, "test-secret")

	hash, _ := auth.HashPassword("correct-password")
	mockRepo.On("FindByEmail", mock.Anything, "edwin@vitalgym.com").
		Return(&User{ID: 1, Email: "edwin@vitalgym.com", PasswordHash: hash, Role: "staff"}, nil)

	t.Run("correct password", func(t *testing.T) {
		user, accessToken, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "edwin@vitalgym.com",
			Password: "correct-password",
		})
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "edwin@vitalgym.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ListClampsPage(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, "test-secret")

	mockRepo.On("List", mock.Anything, "", 1, DefaultPerPage).Return([]User{}, 0, nil)

	_, _, err := svc.List(context.Background(), "", -3)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestFullName(t *testing.T) {
	u := &User{Name: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", u.FullName())

	u = &User{Name: "Cher"}
	assert.Equal(t, "Cher", u.FullName())
}
