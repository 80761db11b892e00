package domain

import "time"

// Review is left by one booking participant about the other, once the
// booking is completed. At most one review per (booking, reviewer).
type Review struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	ReviewerID int64     `json:"reviewer_id"`
	RevieweeID int64     `json:"reviewee_id"`
	Rating     int       `json:"rating" validate:"gte=1,lte=5"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
