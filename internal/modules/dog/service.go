package dog

import (
	"context"

	"petsitter/internal/domain"
)

type DogRepository interface {
	Create(ctx context.Context, d *domain.Dog) error
	FindByID(ctx context.Context, id int64) (*domain.Dog, error)
	Update(ctx context.Context, d *domain.Dog) error
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Dog, error)
}

// OwnerGate returns (nil, nil) on not-found.
type OwnerGate interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type Service struct {
	dogs   DogRepository
	owners OwnerGate
}

func NewService(dogs DogRepository, owners OwnerGate) *Service {
	return &Service{dogs: dogs, owners: owners}
}

func (s *Service) Create(ctx context.Context, req CreateDogRequest) (*domain.Dog, error) {
	size := domain.DogSize(req.Size)
	if !size.Valid() {
		return nil, ErrInvalidSize
	}
	temperament, err := parseTemperament(req.Temperament)
	if err != nil {
		return nil, err
	}

	owner, err := s.owners.FindByID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	d := &domain.Dog{
		OwnerID:             req.OwnerID,
		Name:                req.Name,
		Breed:               req.Breed,
		Age:                 req.Age,
		Size:                size,
		Weight:              req.Weight,
		Temperament:         temperament,
		MedicalNotes:        req.MedicalNotes,
		SpecialInstructions: req.SpecialInstructions,
		ProfileImageURL:     req.ProfileImageURL,
		IsActive:            true,
	}
	if err := s.dogs.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateDogRequest) (*domain.Dog, error) {
	d, err := s.dogs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Breed != nil {
		d.Breed = req.Breed
	}
	if req.Age != nil {
		d.Age = *req.Age
	}
	if req.Size != nil {
		size := domain.DogSize(*req.Size)
		if !size.Valid() {
			return nil, ErrInvalidSize
		}
		d.Size = size
	}
	if req.Weight != nil {
		d.Weight = req.Weight
	}
	if req.Temperament != nil {
		temperament, err := parseTemperament(*req.Temperament)
		if err != nil {
			return nil, err
		}
		d.Temperament = temperament
	}
	if req.MedicalNotes != nil {
		d.MedicalNotes = req.MedicalNotes
	}
	if req.SpecialInstructions != nil {
		d.SpecialInstructions = req.SpecialInstructions
	}
	if req.ProfileImageURL != nil {
		d.ProfileImageURL = req.ProfileImageURL
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	if err := s.dogs.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Dog, error) {
	return s.dogs.ListByOwner(ctx, ownerID)
}

func parseTemperament(tags []string) ([]domain.Temperament, error) {
	out := make([]domain.Temperament, 0, len(tags))
	for _, tag := range tags {
		t := domain.Temperament(tag)
		if !t.Valid() {
			return nil, ErrInvalidTemperament
		}
		out = append(out, t)
	}
	return out, nil
}
