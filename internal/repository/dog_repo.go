package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type DogRepository struct {
	db *gorm.DB
}

func NewDogRepository(db *gorm.DB) *DogRepository {
	return &DogRepository{db: db}
}

type dogModel struct {
	ID                  int64     `gorm:"column:id;primaryKey"`
	OwnerID             int64     `gorm:"column:owner_id;index"`
	Name                string    `gorm:"column:name"`
	Breed               *string   `gorm:"column:breed"`
	Age                 int       `gorm:"column:age"`
	Size                string    `gorm:"column:size"`
	Weight              *float64  `gorm:"column:weight"`
	Temperament         string    `gorm:"column:temperament;type:json"`
	MedicalNotes        *string   `gorm:"column:medical_notes"`
	SpecialInstructions *string   `gorm:"column:special_instructions"`
	ProfileImageURL     *string   `gorm:"column:profile_image_url"`
	IsActive            bool      `gorm:"column:is_active"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (dogModel) TableName() string { return "dogs" }

func toDomainDog(m dogModel) *domain.Dog {
	var temperament []domain.Temperament
	if m.Temperament != "" {
		_ = json.Unmarshal([]byte(m.Temperament), &temperament)
	}

	return &domain.Dog{
		ID:                  m.ID,
		OwnerID:             m.OwnerID,
		Name:                m.Name,
		Breed:               m.Breed,
		Age:                 m.Age,
		Size:                domain.DogSize(m.Size),
		Weight:              m.Weight,
		Temperament:         temperament,
		MedicalNotes:        m.MedicalNotes,
		SpecialInstructions: m.SpecialInstructions,
		ProfileImageURL:     m.ProfileImageURL,
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toDogModel(d *domain.Dog) dogModel {
	temperament, _ := json.Marshal(d.Temperament)

	return dogModel{
		ID:                  d.ID,
		OwnerID:             d.OwnerID,
		Name:                d.Name,
		Breed:               d.Breed,
		Age:                 d.Age,
		Size:                string(d.Size),
		Weight:              d.Weight,
		Temperament:         string(temperament),
		MedicalNotes:        d.MedicalNotes,
		SpecialInstructions: d.SpecialInstructions,
		ProfileImageURL:     d.ProfileImageURL,
		IsActive:            d.IsActive,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func (r *DogRepository) Create(ctx context.Context, d *domain.Dog) error {
	m := toDogModel(d)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*d = *toDomainDog(m)
	return nil
}

// FindByID returns (nil, nil) when no dog exists.
func (r *DogRepository) FindByID(ctx context.Context, id int64) (*domain.Dog, error) {
	var m dogModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainDog(m), nil
}

func (r *DogRepository) Update(ctx context.Context, d *domain.Dog) error {
	m := toDogModel(d)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*d = *toDomainDog(m)
	return nil
}

func (r *DogRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Dog, error) {
	var rows []dogModel
	tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Dog, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainDog(m))
	}
	return out, nil
}
