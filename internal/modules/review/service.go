package review

import (
	"context"
	"errors"
	"strings"

	"petsitter/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// BookingGate and UserGate return (nil, nil) on not-found.

type BookingGate interface {
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type UserGate interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	FindByBookingAndReviewer(ctx context.Context, bookingID, reviewerID int64) (*domain.Review, error)
	ListByReviewee(ctx context.Context, revieweeID int64) ([]domain.Review, error)
}

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate
	users    UserGate
}

func NewService(reviews ReviewRepository, bookings BookingGate, users UserGate) *Service {
	return &Service{reviews: reviews, bookings: bookings, users: users}
}

// Create runs the review guard chain, then inserts. The duplicate
// pre-check is backed by the (booking_id, reviewer_id) unique index, so
// two concurrent submissions cannot both land.
func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	b, err := s.bookings.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrBookingNotCompleted
	}

	reviewer, err := s.users.FindByID(ctx, req.ReviewerID)
	if err != nil {
		return nil, err
	}
	reviewee, err := s.users.FindByID(ctx, req.RevieweeID)
	if err != nil {
		return nil, err
	}
	if reviewer == nil {
		return nil, ErrReviewerNotFound
	}
	if reviewee == nil {
		return nil, ErrRevieweeNotFound
	}

	if !b.Participant(req.ReviewerID) {
		return nil, ErrReviewerNotParticipant
	}
	if req.RevieweeID != b.OtherParticipant(req.ReviewerID) {
		return nil, ErrInvalidReviewee
	}

	existing, err := s.reviews.FindByBookingAndReviewer(ctx, req.BookingID, req.ReviewerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	rv := &domain.Review{
		BookingID:  req.BookingID,
		ReviewerID: req.ReviewerID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}
	return rv, nil
}

// ListByReviewee returns reviews received by a user, newest first.
func (s *Service) ListByReviewee(ctx context.Context, revieweeID int64) ([]domain.Review, error) {
	return s.reviews.ListByReviewee(ctx, revieweeID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite reports constraint failures as plain strings
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
