package repository

import (
	"context"
	"fmt"

	"gatherchat/internal/common"
	"gatherchat/internal/dbmysql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=message_repository.go -destination=../service/mocks/mock_message_repository.go -package=mocks

type MessageRepository interface {
	Create(ctx context.Context, msg *dbmysql.Message) error
	ByID(ctx context.Context, id string) (*dbmysql.Message, error)
	// ByParticipant returns every message the user sent or received, newest first.
	ByParticipant(ctx context.Context, userID string) ([]*dbmysql.Message, error)
	// Thread returns the messages exchanged by two users about one event, oldest first.
	Thread(ctx context.Context, eventID, userID, otherUserID string) ([]*dbmysql.Message, error)
	MarkAsRead(ctx context.Context, id, receiverID string) error
	MarkThreadAsRead(ctx context.Context, eventID, receiverID, senderID string) (int64, error)
	Delete(ctx context.Context, id, senderID string) error
	UnreadCount(ctx context.Context, receiverID string) (int64, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *dbmysql.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *messageRepo) ByID(ctx context.Context, id string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error; err != nil {
		if dbmysql.IsNotFound(err) {
			return nil, fmt.Errorf("message %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return &msg, nil
}

func (r *messageRepo) ByParticipant(ctx context.Context, userID string) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepo) Thread(ctx context.Context, eventID, userID, otherUserID string) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return messages, nil
}

func (r *messageRepo) MarkAsRead(ctx context.Context, id, receiverID string) error {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark message as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("message %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *messageRepo) MarkThreadAsRead(ctx context.Context, eventID, receiverID, senderID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("event_id = ? AND receiver_id = ? AND sender_id = ? AND is_read = ?",
			eventID, receiverID, senderID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark conversation as read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *messageRepo) Delete(ctx context.Context, id, senderID string) error {
	result := r.db.WithContext(ctx).Delete(&dbmysql.Message{}, "id = ? AND sender_id = ?", id, senderID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("message %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *messageRepo) UnreadCount(ctx context.Context, receiverID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
