package repository

import (
	"context"
	"errors"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	OwnerID         int64     `gorm:"column:owner_id;index"`
	SitterID        int64     `gorm:"column:sitter_id;index"`
	DogID           int64     `gorm:"column:dog_id"`
	ListingID       int64     `gorm:"column:listing_id"`
	ServiceType     string    `gorm:"column:service_type"`
	StartDate       time.Time `gorm:"column:start_date"`
	EndDate         time.Time `gorm:"column:end_date"`
	TotalHours      *float64  `gorm:"column:total_hours"`
	TotalDays       *int      `gorm:"column:total_days"`
	TotalPrice      float64   `gorm:"column:total_price"`
	Status          string    `gorm:"column:status"`
	SpecialRequests *string   `gorm:"column:special_requests"`
	Notes           *string   `gorm:"column:notes"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		SitterID:        m.SitterID,
		DogID:           m.DogID,
		ListingID:       m.ListingID,
		ServiceType:     domain.ServiceType(m.ServiceType),
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		TotalHours:      m.TotalHours,
		TotalDays:       m.TotalDays,
		TotalPrice:      m.TotalPrice,
		Status:          domain.BookingStatus(m.Status),
		SpecialRequests: m.SpecialRequests,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		SitterID:        b.SitterID,
		DogID:           b.DogID,
		ListingID:       b.ListingID,
		ServiceType:     string(b.ServiceType),
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		TotalHours:      b.TotalHours,
		TotalDays:       b.TotalDays,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// FindByID returns (nil, nil) when no booking exists.
func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// Update persists the full booking row and refreshes updated_at.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	m.UpdatedAt = time.Now().UTC()
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return r.list(ctx, "owner_id = ?", ownerID)
}

func (r *BookingRepository) ListBySitter(ctx context.Context, sitterID int64) ([]domain.Booking, error) {
	return r.list(ctx, "sitter_id = ?", sitterID)
}

func (r *BookingRepository) list(ctx context.Context, cond string, arg int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Where(cond, arg).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
