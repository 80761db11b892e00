package message

import (
	"context"

	"petsitter/internal/domain"
)

// BookingGate loads the booking a message belongs to. Returns (nil, nil)
// on not-found.
type BookingGate interface {
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	FindByID(ctx context.Context, id int64) (*domain.Message, error)
	MarkRead(ctx context.Context, id int64) error
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Message, error)
}

type Service struct {
	messages MessageRepository
	bookings BookingGate
}

func NewService(messages MessageRepository, bookings BookingGate) *Service {
	return &Service{messages: messages, bookings: bookings}
}

// Send authorizes the sender and receiver against the booking's two
// participants, then persists the message unread.
func (s *Service) Send(ctx context.Context, req SendMessageRequest) (*domain.Message, error) {
	b, err := s.bookings.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if !b.Participant(req.SenderID) {
		return nil, ErrSenderNotAuthorized
	}
	if req.ReceiverID != b.OtherParticipant(req.SenderID) {
		return nil, ErrInvalidReceiver
	}

	m := &domain.Message{
		BookingID:  req.BookingID,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		IsRead:     false,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// MarkRead flips is_read to true. The flag never reverts.
func (s *Service) MarkRead(ctx context.Context, messageID int64) (*domain.Message, error) {
	m, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMessageNotFound
	}

	if !m.IsRead {
		if err := s.messages.MarkRead(ctx, messageID); err != nil {
			return nil, err
		}
		m.IsRead = true
	}
	return m, nil
}

// ListByBooking returns the conversation in chronological order.
func (s *Service) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Message, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return s.messages.ListByBooking(ctx, bookingID)
}
