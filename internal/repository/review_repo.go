package repository

import (
	"context"
	"errors"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	BookingID  int64     `gorm:"column:booking_id;uniqueIndex:idx_one_review_per_reviewer"`
	ReviewerID int64     `gorm:"column:reviewer_id;uniqueIndex:idx_one_review_per_reviewer"`
	RevieweeID int64     `gorm:"column:reviewee_id;index"`
	Rating     int       `gorm:"column:rating"`
	Comment    *string   `gorm:"column:comment"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:         m.ID,
		BookingID:  m.BookingID,
		ReviewerID: m.ReviewerID,
		RevieweeID: m.RevieweeID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	return reviewModel{
		ID:         rv.ID,
		BookingID:  rv.BookingID,
		ReviewerID: rv.ReviewerID,
		RevieweeID: rv.RevieweeID,
		Rating:     rv.Rating,
		Comment:    rv.Comment,
		CreatedAt:  rv.CreatedAt,
	}
}

// Create inserts the review. The composite unique index on
// (booking_id, reviewer_id) makes the duplicate check atomic; callers map
// the unique violation to their duplicate error.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

// FindByBookingAndReviewer returns (nil, nil) when no review exists.
func (r *ReviewRepository) FindByBookingAndReviewer(ctx context.Context, bookingID, reviewerID int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).
		Where("booking_id = ? AND reviewer_id = ?", bookingID, reviewerID).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainReview(m), nil
}

// ListByReviewee returns reviews received by a user, newest first.
func (r *ReviewRepository) ListByReviewee(ctx context.Context, revieweeID int64) ([]domain.Review, error) {
	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}
