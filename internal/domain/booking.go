package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingAccepted, BookingRejected,
		BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// statusTransitions is the booking state machine. Rejected, completed and
// cancelled are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:  {BookingAccepted, BookingRejected, BookingCancelled},
	BookingAccepted: {BookingCompleted, BookingCancelled},
}

// CanTransitionTo reports whether the state machine permits moving from s
// to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              int64         `json:"id"`
	OwnerID         int64         `json:"owner_id" validate:"required"`
	SitterID        int64         `json:"sitter_id" validate:"required"`
	DogID           int64         `json:"dog_id" validate:"required"`
	ListingID       int64         `json:"listing_id" validate:"required"`
	ServiceType     ServiceType   `json:"service_type"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	TotalHours      *float64      `json:"total_hours"`
	TotalDays       *int          `json:"total_days"`
	TotalPrice      float64       `json:"total_price" validate:"gte=0"`
	Status          BookingStatus `json:"status"`
	SpecialRequests *string       `json:"special_requests"`
	Notes           *string       `json:"notes"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Participant reports whether userID is one of the two booking parties.
func (b *Booking) Participant(userID int64) bool {
	return userID == b.OwnerID || userID == b.SitterID
}

// OtherParticipant returns the counterpart of userID in this booking.
// Callers must check Participant first.
func (b *Booking) OtherParticipant(userID int64) int64 {
	if userID == b.OwnerID {
		return b.SitterID
	}
	return b.OwnerID
}
