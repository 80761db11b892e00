package review

type CreateReviewRequest struct {
	BookingID  int64   `json:"booking_id" binding:"required"`
	ReviewerID int64   `json:"reviewer_id" binding:"required"`
	RevieweeID int64   `json:"reviewee_id" binding:"required"`
	Rating     int     `json:"rating" binding:"required" validate:"gte=1,lte=5"`
	Comment    *string `json:"comment"`
}
