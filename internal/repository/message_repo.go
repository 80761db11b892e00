package repository

import (
	"context"
	"errors"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

type messageModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	BookingID  int64     `gorm:"column:booking_id;index"`
	SenderID   int64     `gorm:"column:sender_id"`
	ReceiverID int64     `gorm:"column:receiver_id"`
	Content    string    `gorm:"column:content"`
	IsRead     bool      `gorm:"column:is_read"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (messageModel) TableName() string { return "messages" }

func toDomainMessage(m messageModel) *domain.Message {
	return &domain.Message{
		ID:         m.ID,
		BookingID:  m.BookingID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
}

func toMessageModel(msg *domain.Message) messageModel {
	return messageModel{
		ID:         msg.ID,
		BookingID:  msg.BookingID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Content:    msg.Content,
		IsRead:     msg.IsRead,
		CreatedAt:  msg.CreatedAt,
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	m := toMessageModel(msg)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*msg = *toDomainMessage(m)
	return nil
}

// FindByID returns (nil, nil) when no message exists.
func (r *MessageRepository) FindByID(ctx context.Context, id int64) (*domain.Message, error) {
	var m messageModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainMessage(m), nil
}

// MarkRead flips is_read to true. The flag never reverts.
func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&messageModel{}).
		Where("id = ?", id).
		Update("is_read", true)
	return tx.Error
}

// ListByBooking returns the conversation in chronological order.
func (r *MessageRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Message, error) {
	var rows []messageModel
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Message, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainMessage(m))
	}
	return out, nil
}
