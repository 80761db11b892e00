package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

type listingModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	SitterID         int64     `gorm:"column:sitter_id;index"`
	Title            string    `gorm:"column:title"`
	Description      string    `gorm:"column:description"`
	ServicesOffered  string    `gorm:"column:services_offered;type:json"`
	PricePerHour     float64   `gorm:"column:price_per_hour"`
	PricePerDay      *float64  `gorm:"column:price_per_day"`
	PricePerNight    *float64  `gorm:"column:price_per_night"`
	MaxDogs          int       `gorm:"column:max_dogs"`
	AcceptsSizes     string    `gorm:"column:accepts_sizes;type:json"`
	Location         string    `gorm:"column:location"`
	RadiusKm         float64   `gorm:"column:radius_km"`
	ExperienceYears  int       `gorm:"column:experience_years"`
	HasYard          bool      `gorm:"column:has_yard"`
	HasInsurance     bool      `gorm:"column:has_insurance"`
	EmergencyContact *string   `gorm:"column:emergency_contact"`
	IsActive         bool      `gorm:"column:is_active"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (listingModel) TableName() string { return "sitter_listings" }

func toDomainListing(m listingModel) *domain.SitterListing {
	var services []domain.ServiceType
	if m.ServicesOffered != "" {
		_ = json.Unmarshal([]byte(m.ServicesOffered), &services)
	}
	var sizes []domain.DogSize
	if m.AcceptsSizes != "" {
		_ = json.Unmarshal([]byte(m.AcceptsSizes), &sizes)
	}

	return &domain.SitterListing{
		ID:               m.ID,
		SitterID:         m.SitterID,
		Title:            m.Title,
		Description:      m.Description,
		ServicesOffered:  services,
		PricePerHour:     m.PricePerHour,
		PricePerDay:      m.PricePerDay,
		PricePerNight:    m.PricePerNight,
		MaxDogs:          m.MaxDogs,
		AcceptsSizes:     sizes,
		Location:         m.Location,
		RadiusKm:         m.RadiusKm,
		ExperienceYears:  m.ExperienceYears,
		HasYard:          m.HasYard,
		HasInsurance:     m.HasInsurance,
		EmergencyContact: m.EmergencyContact,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toListingModel(l *domain.SitterListing) listingModel {
	services, _ := json.Marshal(l.ServicesOffered)
	sizes, _ := json.Marshal(l.AcceptsSizes)

	return listingModel{
		ID:               l.ID,
		SitterID:         l.SitterID,
		Title:            l.Title,
		Description:      l.Description,
		ServicesOffered:  string(services),
		PricePerHour:     l.PricePerHour,
		PricePerDay:      l.PricePerDay,
		PricePerNight:    l.PricePerNight,
		MaxDogs:          l.MaxDogs,
		AcceptsSizes:     string(sizes),
		Location:         l.Location,
		RadiusKm:         l.RadiusKm,
		ExperienceYears:  l.ExperienceYears,
		HasYard:          l.HasYard,
		HasInsurance:     l.HasInsurance,
		EmergencyContact: l.EmergencyContact,
		IsActive:         l.IsActive,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.SitterListing) error {
	m := toListingModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainListing(m)
	return nil
}

// FindByID returns (nil, nil) when no listing exists.
func (r *ListingRepository) FindByID(ctx context.Context, id int64) (*domain.SitterListing, error) {
	var m listingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainListing(m), nil
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.SitterListing) error {
	m := toListingModel(l)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainListing(m)
	return nil
}

func (r *ListingRepository) ListBySitter(ctx context.Context, sitterID int64) ([]domain.SitterListing, error) {
	var rows []listingModel
	tx := r.db.WithContext(ctx).Where("sitter_id = ?", sitterID).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainListings(rows), nil
}

// SearchFilters are the query-level search criteria. Service type and dog
// size membership are filtered in the service layer since the enum sets
// are stored as JSON arrays.
type SearchFilters struct {
	Location           *string
	RadiusKm           *float64
	MaxPricePerHour    *float64
	HasYard            *bool
	HasInsurance       *bool
	MinExperienceYears *int
}

func (r *ListingRepository) Search(ctx context.Context, f SearchFilters) ([]domain.SitterListing, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)

	if f.Location != nil {
		q = q.Where("location = ?", *f.Location)
	}
	if f.RadiusKm != nil {
		q = q.Where("radius_km >= ?", *f.RadiusKm)
	}
	if f.MaxPricePerHour != nil {
		q = q.Where("price_per_hour <= ?", *f.MaxPricePerHour)
	}
	if f.HasYard != nil {
		q = q.Where("has_yard = ?", *f.HasYard)
	}
	if f.HasInsurance != nil {
		q = q.Where("has_insurance = ?", *f.HasInsurance)
	}
	if f.MinExperienceYears != nil {
		q = q.Where("experience_years >= ?", *f.MinExperienceYears)
	}

	var rows []listingModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainListings(rows), nil
}

func toDomainListings(rows []listingModel) []domain.SitterListing {
	out := make([]domain.SitterListing, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainListing(m))
	}
	return out
}
