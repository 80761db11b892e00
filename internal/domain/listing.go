package domain

import "time"

type ServiceType string

const (
	ServiceDogWalking    ServiceType = "dog_walking"
	ServicePetSitting    ServiceType = "pet_sitting"
	ServiceDaycare       ServiceType = "daycare"
	ServiceOvernightCare ServiceType = "overnight_care"
	ServiceGrooming      ServiceType = "grooming"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceDogWalking, ServicePetSitting, ServiceDaycare,
		ServiceOvernightCare, ServiceGrooming:
		return true
	}
	return false
}

type SitterListing struct {
	ID               int64         `json:"id"`
	SitterID         int64         `json:"sitter_id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	ServicesOffered  []ServiceType `json:"services_offered"`
	PricePerHour     float64       `json:"price_per_hour" validate:"gt=0"`
	PricePerDay      *float64      `json:"price_per_day"`
	PricePerNight    *float64      `json:"price_per_night"`
	MaxDogs          int           `json:"max_dogs"`
	AcceptsSizes     []DogSize     `json:"accepts_sizes"`
	Location         string        `json:"location"`
	RadiusKm         float64       `json:"radius_km"`
	ExperienceYears  int           `json:"experience_years"`
	HasYard          bool          `json:"has_yard"`
	HasInsurance     bool          `json:"has_insurance"`
	EmergencyContact *string       `json:"emergency_contact"`
	IsActive         bool          `json:"is_active"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Offers reports whether the listing advertises the given service.
func (l *SitterListing) Offers(s ServiceType) bool {
	for _, v := range l.ServicesOffered {
		if v == s {
			return true
		}
	}
	return false
}

// Accepts reports whether the listing accepts dogs of the given size.
func (l *SitterListing) Accepts(s DogSize) bool {
	for _, v := range l.AcceptsSizes {
		if v == s {
			return true
		}
	}
	return false
}
