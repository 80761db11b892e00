package message

import (
	"context"
	"testing"

	"petsitter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	if msg != nil {
		msg.ID = 555
	}
	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id int64) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Message, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
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

func serviceWithBooking(t *testing.T) (*Service, *MockMessageRepository) {
	t.Helper()
	messages := new(MockMessageRepository)
	bookings := new(MockBookingGate)
	bookings.On("FindByID", mock.Anything, int64(10)).
		Return(&domain.Booking{ID: 10, OwnerID: 1, SitterID: 2}, nil)
	bookings.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)
	return NewService(messages, bookings), messages
}

func TestService_Send_BothDirections(t *testing.T) {
	service, messages := serviceWithBooking(t)
	messages.On("Create", mock.Anything, mock.Anything).Return(nil)

	m, err := service.Send(context.Background(), SendMessageRequest{
		BookingID: 10, SenderID: 1, ReceiverID: 2, Content: "hi",
	})
	require.NoError(t, err)
	assert.False(t, m.IsRead)

	m, err = service.Send(context.Background(), SendMessageRequest{
		BookingID: 10, SenderID: 2, ReceiverID: 1, Content: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.SenderID)
}

func TestService_Send_BookingNotFound(t *testing.T) {
	service, _ := serviceWithBooking(t)

	_, err := service.Send(context.Background(), SendMessageRequest{
		BookingID: 99, SenderID: 1, ReceiverID: 2, Content: "hi",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Send_OutsiderCannotSend(t *testing.T) {
	service, _ := serviceWithBooking(t)

	_, err := service.Send(context.Background(), SendMessageRequest{
		BookingID: 10, SenderID: 3, ReceiverID: 2, Content: "hi",
	})

	assert.ErrorIs(t, err, ErrSenderNotAuthorized)
}

func TestService_Send_ReceiverMustBeOtherParticipant(t *testing.T) {
	service, _ := serviceWithBooking(t)

	// outsider receiver
	_, err := service.Send(context.Background(), SendMessageRequest{
		BookingID: 10, SenderID: 1, ReceiverID: 3, Content: "hi",
	})
	assert.ErrorIs(t, err, ErrInvalidReceiver)

	// sender messaging themselves
	_, err = service.Send(context.Background(), SendMessageRequest{
		BookingID: 10, SenderID: 1, ReceiverID: 1, Content: "hi",
	})
	assert.ErrorIs(t, err, ErrInvalidReceiver)
}

func TestService_MarkRead(t *testing.T) {
	service, messages := serviceWithBooking(t)

	messages.On("FindByID", mock.Anything, int64(555)).
		Return(&domain.Message{ID: 555, BookingID: 10, IsRead: false}, nil)
	messages.On("MarkRead", mock.Anything, int64(555)).Return(nil)

	m, err := service.MarkRead(context.Background(), 555)

	require.NoError(t, err)
	assert.True(t, m.IsRead)
	messages.AssertCalled(t, "MarkRead", mock.Anything, int64(555))
}

func TestService_MarkRead_AlreadyReadIsIdempotent(t *testing.T) {
	service, messages := serviceWithBooking(t)

	messages.On("FindByID", mock.Anything, int64(555)).
		Return(&domain.Message{ID: 555, BookingID: 10, IsRead: true}, nil)

	m, err := service.MarkRead(context.Background(), 555)

	require.NoError(t, err)
	assert.True(t, m.IsRead)
	messages.AssertNotCalled(t, "MarkRead", mock.Anything, int64(555))
}

func TestService_MarkRead_NotFound(t *testing.T) {
	service, messages := serviceWithBooking(t)
	messages.On("FindByID", mock.Anything, int64(404)).Return(nil, nil)

	_, err := service.MarkRead(context.Background(), 404)

	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestService_ListByBooking(t *testing.T) {
	service, messages := serviceWithBooking(t)
	messages.On("ListByBooking", mock.Anything, int64(10)).
		Return([]domain.Message{{ID: 1}, {ID: 2}}, nil)

	out, err := service.ListByBooking(context.Background(), 10)

	require.NoError(t, err)
	assert.Len(t, out, 2)
}
