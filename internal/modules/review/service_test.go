package review

import (
	"context"
	"errors"
	"testing"

	"petsitter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 321
	}
	return args.Error(0)
}

func (m *MockReviewRepository) FindByBookingAndReviewer(ctx context.Context, bookingID, reviewerID int64) (*domain.Review, error) {
	args := m.Called(ctx, bookingID, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByReviewee(ctx context.Context, revieweeID int64) ([]domain.Review, error) {
	args := m.Called(ctx, revieweeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockUserGate struct {
	mock.Mock
}

func (m *MockUserGate) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// completed booking between owner 1 and sitter 2, both users present
func guardFixture() (*Service, *MockReviewRepository, *MockBookingGate, *MockUserGate) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingGate)
	users := new(MockUserGate)

	bookings.On("FindByID", mock.Anything, int64(10)).
		Return(&domain.Booking{ID: 10, OwnerID: 1, SitterID: 2, Status: domain.BookingCompleted}, nil)
	users.On("FindByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("FindByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)

	return NewService(reviews, bookings, users), reviews, bookings, users
}

func TestService_Create_Success(t *testing.T) {
	service, reviews, _, _ := guardFixture()

	reviews.On("FindByBookingAndReviewer", mock.Anything, int64(10), int64(1)).Return(nil, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	rv, err := service.Create(context.Background(), CreateReviewRequest{
		BookingID: 10, ReviewerID: 1, RevieweeID: 2, Rating: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(321), rv.ID)
	assert.Equal(t, 5, rv.Rating)
}

func TestService_Create_BothParticipantsMayReview(t *testing.T) {
	service, reviews, _, _ := guardFixture()

	// owner already reviewed; the sitter's own review is still allowed
	reviews.On("FindByBookingAndReviewer", mock.Anything, int64(10), int64(2)).Return(nil, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	rv, err := service.Create(context.Background(), CreateReviewRequest{
		BookingID: 10, ReviewerID: 2, RevieweeID: 1, Rating: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), rv.ReviewerID)
	assert.Equal(t, int64(1), rv.RevieweeID)
}

func TestService_Create_DuplicateReview(t *testing.T) {
	service, reviews, _, _ := guardFixture()

	reviews.On("FindByBookingAndReviewer", mock.Anything, int64(10), int64(1)).
		Return(&domain.Review{ID: 1, BookingID: 10, ReviewerID: 1}, nil)

	_, err := service.Create(context.Background(), CreateReviewRequest{
		BookingID: 10, ReviewerID: 1, RevieweeID: 2, Rating: 3,
	})

	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestService_Create_UniqueViolationMapsToDuplicate(t *testing.T) {
	// concurrent submission slips past the pre-check; the unique index
	// still rejects it
	service, reviews, _, _ := guardFixture()

	reviews.On("FindByBookingAndReviewer", mock.Anything, int64(10), int64(1)).Return(nil, nil)
	reviews.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("UNIQUE constraint failed: reviews.booking_id, reviews.reviewer_id"))

	_, err := service.Create(context.Background(), CreateReviewRequest{
		BookingID: 10, ReviewerID: 1, RevieweeID: 2, Rating: 3,
	})

	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestService_Create_BookingNotFound(t *testing.T) {
	service, _, bookings, _ := guardFixture()
	bookings.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := service.Create(context.Background(), CreateReviewRequest{
		BookingID: 99, ReviewerID: 1, RevieweeID: 2, Rating: 5,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Create_BookingNotCompleted(t *testing.T) {
	service, _, bookings, _ := guardFixture()
	bookings.On("FindByID", mock.Anything, int64(11)).
		Return(&domain.Booking{ID: 11, OwnerID: 1, SitterID: 2, Status: domain.BookingAccepted}, nil)

	_, err := service.Create(context.Background(), CreateReviewRequest{
		BookingID: 11, ReviewerID: 1, RevieweeID: 2, Rating: 5,
	})

	assert.ErrorIs(t, err, ErrBookingNotCompleted)
}

func TestService_Create_ReviewerNotFound(t *testing.T) {
	service, _, _, users := guardFixture()
	users.On("FindByID", mock.Anything, int64(3)).Return(nil, nil)

	_, err := service.Create(context.Background(), CreateReviewRequest{
		BookingID: 10, ReviewerID: 3, RevieweeID: 2, Rating: 5,
	})

	assert.ErrorIs(t, err, ErrReviewerNotFound)
}

func TestService_Create_ReviewerNotParticipant(t *testing.T) {
	service, _, _, users := guardFixture()
	users.On("FindByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)

	_, err := service.Create(context.Background(), CreateReviewRequest{
		BookingID: 10, ReviewerID: 3, RevieweeID: 2, Rating: 5,
	})

	assert.ErrorIs(t, err, ErrReviewerNotParticipant)
}

func TestService_Create_InvalidReviewee(t *testing.T) {
	service, _, _, users := guardFixture()
	users.On("FindByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)

	// reviewee must be the counterpart, not an arbitrary user
	_, err := service.Create(context.Background(), CreateReviewRequest{
		BookingID: 10, ReviewerID: 1, RevieweeID: 3, Rating: 5,
	})
	assert.ErrorIs(t, err, ErrInvalidReviewee)

	// nor the reviewer themselves
	_, err = service.Create(context.Background(), CreateReviewRequest{
		BookingID: 10, ReviewerID: 1, RevieweeID: 1, Rating: 5,
	})
	assert.ErrorIs(t, err, ErrInvalidReviewee)
}

func TestService_Create_InvalidRating(t *testing.T) {
	service, _, _, _ := guardFixture()

	for _, rating := range []int{0, -1, 6} {
		_, err := service.Create(context.Background(), CreateReviewRequest{
			BookingID: 10, ReviewerID: 1, RevieweeID: 2, Rating: rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}
