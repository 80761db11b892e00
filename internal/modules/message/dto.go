package message

type SendMessageRequest struct {
	BookingID  int64  `json:"booking_id" binding:"required"`
	SenderID   int64  `json:"sender_id" binding:"required"`
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}
