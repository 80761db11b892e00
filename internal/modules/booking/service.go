package booking

import (
	"context"

	"petsitter/internal/domain"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	bookings BookingRepository
	users    UserFinder
	dogs     DogFinder
	listings ListingFinder
}

func NewService(bookings BookingRepository, users UserFinder, dogs DogFinder, listings ListingFinder) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		dogs:     dogs,
		listings: listings,
	}
}

// CreateBooking validates the request against its referenced entities,
// prices it and persists it with status pending.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrValidation
	}

	serviceType := domain.ServiceType(req.ServiceType)
	if !serviceType.Valid() {
		return nil, ErrInvalidServiceType
	}

	// The four lookups have no data dependency, so they run concurrently.
	// The ownership checks below need the fetched records.
	var (
		owner, sitter *domain.User
		dog           *domain.Dog
		listing       *domain.SitterListing
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		owner, err = s.users.FindByID(gctx, req.OwnerID)
		return err
	})
	g.Go(func() (err error) {
		sitter, err = s.users.FindByID(gctx, req.SitterID)
		return err
	})
	g.Go(func() (err error) {
		dog, err = s.dogs.FindByID(gctx, req.DogID)
		return err
	})
	g.Go(func() (err error) {
		listing, err = s.listings.FindByID(gctx, req.ListingID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// First violation wins; existence checks precede ownership checks.
	switch {
	case owner == nil:
		return nil, ErrOwnerNotFound
	case sitter == nil:
		return nil, ErrSitterNotFound
	case dog == nil:
		return nil, ErrDogNotFound
	case listing == nil:
		return nil, ErrListingNotFound
	}
	if dog.OwnerID != req.OwnerID {
		return nil, ErrDogOwnershipMismatch
	}
	if listing.SitterID != req.SitterID {
		return nil, ErrListingOwnershipMismatch
	}

	quote, err := ComputeQuote(serviceType, req.StartDate, req.EndDate, RateCard{
		PricePerHour:  listing.PricePerHour,
		PricePerDay:   listing.PricePerDay,
		PricePerNight: listing.PricePerNight,
	})
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		OwnerID:         req.OwnerID,
		SitterID:        req.SitterID,
		DogID:           req.DogID,
		ListingID:       req.ListingID,
		ServiceType:     serviceType,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TotalHours:      quote.Hours,
		TotalDays:       quote.Days,
		TotalPrice:      quote.Price,
		Status:          domain.BookingPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateStatus advances the booking through the state machine. Notes are
// tri-state: absent keeps the stored value, explicit null clears it, a
// string overwrites it.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req UpdateBookingStatusRequest) (*domain.Booking, error) {
	status := domain.BookingStatus(req.Status)
	if !status.Valid() {
		return nil, ErrValidation
	}

	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if !b.Status.CanTransitionTo(status) {
		return nil, ErrInvalidStatusTransition
	}

	b.Status = status
	if req.NotesProvided {
		b.Notes = req.Notes
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return s.bookings.ListByOwner(ctx, ownerID)
}

func (s *Service) ListBySitter(ctx context.Context, sitterID int64) ([]domain.Booking, error) {
	return s.bookings.ListBySitter(ctx, sitterID)
}
