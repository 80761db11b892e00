package listing

import (
	"context"
	"testing"

	"petsitter/internal/domain"
	"petsitter/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, l *domain.SitterListing) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 42
	}
	return args.Error(0)
}

func (m *MockListingRepository) FindByID(ctx context.Context, id int64) (*domain.SitterListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SitterListing), args.Error(1)
}

func (m *MockListingRepository) Update(ctx context.Context, l *domain.SitterListing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) ListBySitter(ctx context.Context, sitterID int64) ([]domain.SitterListing, error) {
	args := m.Called(ctx, sitterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SitterListing), args.Error(1)
}

func (m *MockListingRepository) Search(ctx context.Context, f repository.SearchFilters) ([]domain.SitterListing, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SitterListing), args.Error(1)
}

type MockSitterGate struct {
	mock.Mock
}

func (m *MockSitterGate) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func validCreate() CreateListingRequest {
	return CreateListingRequest{
		SitterID:        2,
		Title:           "Dog walking downtown",
		Description:     "Daily walks, rain or shine",
		ServicesOffered: []string{"dog_walking"},
		PricePerHour:    25,
		MaxDogs:         2,
		AcceptsSizes:    []string{"small", "medium"},
		Location:        "Springfield",
		RadiusKm:        5,
	}
}

func TestService_Create_Success(t *testing.T) {
	listings := new(MockListingRepository)
	users := new(MockSitterGate)
	users.On("FindByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleSitter}, nil)
	listings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(listings, users)
	l, err := service.Create(context.Background(), validCreate())

	require.NoError(t, err)
	assert.True(t, l.IsActive)
	assert.Equal(t, []domain.ServiceType{domain.ServiceDogWalking}, l.ServicesOffered)
}

func TestService_Create_BothRoleMaySit(t *testing.T) {
	listings := new(MockListingRepository)
	users := new(MockSitterGate)
	users.On("FindByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleBoth}, nil)
	listings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(listings, users)
	_, err := service.Create(context.Background(), validCreate())

	assert.NoError(t, err)
}

func TestService_Create_OwnerRoleRejected(t *testing.T) {
	listings := new(MockListingRepository)
	users := new(MockSitterGate)
	users.On("FindByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleOwner}, nil)

	service := NewService(listings, users)
	_, err := service.Create(context.Background(), validCreate())

	assert.ErrorIs(t, err, ErrNotASitter)
}

func TestService_Create_SitterNotFound(t *testing.T) {
	listings := new(MockListingRepository)
	users := new(MockSitterGate)
	users.On("FindByID", mock.Anything, int64(2)).Return(nil, nil)

	service := NewService(listings, users)
	_, err := service.Create(context.Background(), validCreate())

	assert.ErrorIs(t, err, ErrSitterNotFound)
}

func TestService_Create_RejectsNonPositivePrices(t *testing.T) {
	listings := new(MockListingRepository)
	users := new(MockSitterGate)
	service := NewService(listings, users)

	req := validCreate()
	req.PricePerHour = 0
	_, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	req = validCreate()
	zero := 0.0
	req.PricePerDay = &zero
	_, err = service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestService_Search_MembershipFilters(t *testing.T) {
	listings := new(MockListingRepository)
	users := new(MockSitterGate)

	rows := []domain.SitterListing{
		{
			ID:              1,
			ServicesOffered: []domain.ServiceType{domain.ServiceDogWalking, domain.ServiceDaycare},
			AcceptsSizes:    []domain.DogSize{domain.SizeSmall, domain.SizeMedium},
		},
		{
			ID:              2,
			ServicesOffered: []domain.ServiceType{domain.ServiceGrooming},
			AcceptsSizes:    []domain.DogSize{domain.SizeLarge},
		},
	}
	listings.On("Search", mock.Anything, mock.Anything).Return(rows, nil)

	service := NewService(listings, users)

	svc := "dog_walking"
	size := "medium"
	out, err := service.Search(context.Background(), SearchRequest{ServiceType: &svc, DogSize: &size})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestService_Search_InvalidEnumFilters(t *testing.T) {
	listings := new(MockListingRepository)
	users := new(MockSitterGate)
	service := NewService(listings, users)

	bad := "cat_herding"
	_, err := service.Search(context.Background(), SearchRequest{ServiceType: &bad})
	assert.ErrorIs(t, err, ErrInvalidService)

	badSize := "gigantic"
	_, err = service.Search(context.Background(), SearchRequest{DogSize: &badSize})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestService_Update_PartialFields(t *testing.T) {
	listings := new(MockListingRepository)
	users := new(MockSitterGate)

	day := 120.0
	listings.On("FindByID", mock.Anything, int64(42)).Return(&domain.SitterListing{
		ID:           42,
		SitterID:     2,
		Title:        "Old title",
		PricePerHour: 25,
		PricePerDay:  &day,
		IsActive:     true,
	}, nil)
	listings.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(listings, users)

	title := "New title"
	inactive := false
	l, err := service.Update(context.Background(), 42, UpdateListingRequest{
		Title:    &title,
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", l.Title)
	assert.False(t, l.IsActive)
	// untouched fields keep their values
	assert.Equal(t, 25.0, l.PricePerHour)
	require.NotNil(t, l.PricePerDay)
	assert.Equal(t, 120.0, *l.PricePerDay)
}
