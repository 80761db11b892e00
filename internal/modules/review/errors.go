package review

import "errors"

var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingNotCompleted    = errors.New("can only review completed bookings")
	ErrReviewerNotFound       = errors.New("reviewer not found")
	ErrRevieweeNotFound       = errors.New("reviewee not found")
	ErrReviewerNotParticipant = errors.New("only booking participants can leave reviews")
	ErrInvalidReviewee        = errors.New("reviewee must be the other booking participant")
	ErrDuplicateReview        = errors.New("review already exists for this booking")
	ErrInvalidRating          = errors.New("rating must be between 1 and 5")
)
