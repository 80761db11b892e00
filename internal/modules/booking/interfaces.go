package booking

import (
	"context"

	"petsitter/internal/domain"
)

// All finders return (nil, nil) on not-found so the service can map
// absence to its own typed errors.

type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type DogFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.Dog, error)
}

type ListingFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.SitterListing, error)
}

// BookingRepository defines the interface for booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
	ListBySitter(ctx context.Context, sitterID int64) ([]domain.Booking, error)
}
