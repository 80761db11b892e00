package listing

import (
	"context"

	"petsitter/internal/domain"
	"petsitter/internal/repository"
)

type ListingRepository interface {
	Create(ctx context.Context, l *domain.SitterListing) error
	FindByID(ctx context.Context, id int64) (*domain.SitterListing, error)
	Update(ctx context.Context, l *domain.SitterListing) error
	ListBySitter(ctx context.Context, sitterID int64) ([]domain.SitterListing, error)
	Search(ctx context.Context, f repository.SearchFilters) ([]domain.SitterListing, error)
}

// SitterGate returns (nil, nil) on not-found.
type SitterGate interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type Service struct {
	listings ListingRepository
	users    SitterGate
}

func NewService(listings ListingRepository, users SitterGate) *Service {
	return &Service{listings: listings, users: users}
}

// Create requires the sitter to exist and hold the sitter or both role.
func (s *Service) Create(ctx context.Context, req CreateListingRequest) (*domain.SitterListing, error) {
	services, err := parseServices(req.ServicesOffered)
	if err != nil {
		return nil, err
	}
	sizes, err := parseSizes(req.AcceptsSizes)
	if err != nil {
		return nil, err
	}
	if err := checkPrices(req.PricePerHour, req.PricePerDay, req.PricePerNight); err != nil {
		return nil, err
	}

	sitter, err := s.users.FindByID(ctx, req.SitterID)
	if err != nil {
		return nil, err
	}
	if sitter == nil {
		return nil, ErrSitterNotFound
	}
	if !sitter.Role.CanSit() {
		return nil, ErrNotASitter
	}

	l := &domain.SitterListing{
		SitterID:         req.SitterID,
		Title:            req.Title,
		Description:      req.Description,
		ServicesOffered:  services,
		PricePerHour:     req.PricePerHour,
		PricePerDay:      req.PricePerDay,
		PricePerNight:    req.PricePerNight,
		MaxDogs:          req.MaxDogs,
		AcceptsSizes:     sizes,
		Location:         req.Location,
		RadiusKm:         req.RadiusKm,
		ExperienceYears:  req.ExperienceYears,
		HasYard:          req.HasYard,
		HasInsurance:     req.HasInsurance,
		EmergencyContact: req.EmergencyContact,
		IsActive:         true,
	}
	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateListingRequest) (*domain.SitterListing, error) {
	l, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.ServicesOffered != nil {
		services, err := parseServices(*req.ServicesOffered)
		if err != nil {
			return nil, err
		}
		l.ServicesOffered = services
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, ErrInvalidPrice
		}
		l.PricePerHour = *req.PricePerHour
	}
	if req.PricePerDay != nil {
		if *req.PricePerDay <= 0 {
			return nil, ErrInvalidPrice
		}
		l.PricePerDay = req.PricePerDay
	}
	if req.PricePerNight != nil {
		if *req.PricePerNight <= 0 {
			return nil, ErrInvalidPrice
		}
		l.PricePerNight = req.PricePerNight
	}
	if req.MaxDogs != nil {
		l.MaxDogs = *req.MaxDogs
	}
	if req.AcceptsSizes != nil {
		sizes, err := parseSizes(*req.AcceptsSizes)
		if err != nil {
			return nil, err
		}
		l.AcceptsSizes = sizes
	}
	if req.Location != nil {
		l.Location = *req.Location
	}
	if req.RadiusKm != nil {
		l.RadiusKm = *req.RadiusKm
	}
	if req.ExperienceYears != nil {
		l.ExperienceYears = *req.ExperienceYears
	}
	if req.HasYard != nil {
		l.HasYard = *req.HasYard
	}
	if req.HasInsurance != nil {
		l.HasInsurance = *req.HasInsurance
	}
	if req.EmergencyContact != nil {
		l.EmergencyContact = req.EmergencyContact
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}

	if err := s.listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) ListBySitter(ctx context.Context, sitterID int64) ([]domain.SitterListing, error) {
	return s.listings.ListBySitter(ctx, sitterID)
}

// Search filters active listings. Scalar criteria go to the query; service
// type and dog size membership are checked here because the enum sets live
// in JSON columns. Location matching is exact, not geographic.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]domain.SitterListing, error) {
	var serviceType *domain.ServiceType
	if req.ServiceType != nil {
		st := domain.ServiceType(*req.ServiceType)
		if !st.Valid() {
			return nil, ErrInvalidService
		}
		serviceType = &st
	}
	var dogSize *domain.DogSize
	if req.DogSize != nil {
		ds := domain.DogSize(*req.DogSize)
		if !ds.Valid() {
			return nil, ErrInvalidSize
		}
		dogSize = &ds
	}

	rows, err := s.listings.Search(ctx, repository.SearchFilters{
		Location:           req.Location,
		RadiusKm:           req.RadiusKm,
		MaxPricePerHour:    req.MaxPricePerHour,
		HasYard:            req.HasYard,
		HasInsurance:       req.HasInsurance,
		MinExperienceYears: req.MinExperienceYears,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.SitterListing, 0, len(rows))
	for _, l := range rows {
		if serviceType != nil && !l.Offers(*serviceType) {
			continue
		}
		if dogSize != nil && !l.Accepts(*dogSize) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func parseServices(values []string) ([]domain.ServiceType, error) {
	out := make([]domain.ServiceType, 0, len(values))
	for _, v := range values {
		st := domain.ServiceType(v)
		if !st.Valid() {
			return nil, ErrInvalidService
		}
		out = append(out, st)
	}
	return out, nil
}

func parseSizes(values []string) ([]domain.DogSize, error) {
	out := make([]domain.DogSize, 0, len(values))
	for _, v := range values {
		ds := domain.DogSize(v)
		if !ds.Valid() {
			return nil, ErrInvalidSize
		}
		out = append(out, ds)
	}
	return out, nil
}

func checkPrices(perHour float64, perDay, perNight *float64) error {
	if perHour <= 0 {
		return ErrInvalidPrice
	}
	if perDay != nil && *perDay <= 0 {
		return ErrInvalidPrice
	}
	if perNight != nil && *perNight <= 0 {
		return ErrInvalidPrice
	}
	return nil
}
