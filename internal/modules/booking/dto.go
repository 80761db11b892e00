package booking

import (
	"encoding/json"
	"time"
)

type CreateBookingRequest struct {
	OwnerID         int64     `json:"owner_id" binding:"required"`
	SitterID        int64     `json:"sitter_id" binding:"required"`
	DogID           int64     `json:"dog_id" binding:"required"`
	ListingID       int64     `json:"listing_id" binding:"required"`
	ServiceType     string    `json:"service_type" binding:"required"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	SpecialRequests *string   `json:"special_requests"`
}

// UpdateBookingStatusRequest distinguishes an absent notes key (keep the
// stored value) from an explicit null (clear it). NotesProvided records
// whether the key was present in the request body.
type UpdateBookingStatusRequest struct {
	Status        string  `json:"status" binding:"required"`
	Notes         *string `json:"notes"`
	NotesProvided bool    `json:"-"`
}

func (r *UpdateBookingStatusRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateBookingStatusRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, a.NotesProvided = keys["notes"]

	*r = UpdateBookingStatusRequest(a)
	return nil
}
