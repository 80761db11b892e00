package user

import (
	"context"
	"errors"
	"testing"

	"petsitter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 7
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func TestService_Create_HashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users)
	u, err := service.Create(context.Background(), CreateUserRequest{
		Email:     "anna@example.com",
		Password:  "correct horse",
		FirstName: "Anna",
		LastName:  "Petrova",
		Role:      "owner",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")))
}

func TestService_Create_InvalidRole(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users)

	_, err := service.Create(context.Background(), CreateUserRequest{
		Email: "anna@example.com", Password: "correct horse",
		FirstName: "Anna", LastName: "Petrova", Role: "admin",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("UNIQUE constraint failed: users.email"))

	service := NewService(users)
	_, err := service.Create(context.Background(), CreateUserRequest{
		Email: "anna@example.com", Password: "correct horse",
		FirstName: "Anna", LastName: "Petrova", Role: "owner",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_GetByID_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	service := NewService(users)
	_, err := service.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_ProfileFieldsOnly(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, int64(7)).Return(&domain.User{
		ID:    7,
		Email: "anna@example.com",
		Role:  domain.RoleOwner,
	}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users)

	bio := "Dog person"
	u, err := service.Update(context.Background(), 7, UpdateUserRequest{Bio: &bio})

	require.NoError(t, err)
	require.NotNil(t, u.Bio)
	assert.Equal(t, "Dog person", *u.Bio)
	assert.Equal(t, "anna@example.com", u.Email)
	assert.Equal(t, domain.RoleOwner, u.Role)
}
