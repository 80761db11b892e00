package booking

import "errors"

var (
	ErrValidation = errors.New("validation error")

	ErrOwnerNotFound   = errors.New("owner not found")
	ErrSitterNotFound  = errors.New("sitter not found")
	ErrDogNotFound     = errors.New("dog not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrDogOwnershipMismatch     = errors.New("dog does not belong to the specified owner")
	ErrListingOwnershipMismatch = errors.New("listing does not belong to the specified sitter")

	ErrInvalidServiceType      = errors.New("invalid service type")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
