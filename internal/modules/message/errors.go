package message

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrMessageNotFound     = errors.New("message not found")
	ErrSenderNotAuthorized = errors.New("sender is not a participant of this booking")
	ErrInvalidReceiver     = errors.New("receiver is not the other booking participant")
)
