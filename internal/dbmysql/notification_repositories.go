package dbmysql

import (
	"context"
	"errors"
	"fmt"

	"gatherchat/internal/common"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	ByUserID(ctx context.Context, userID string, limit, offset int) ([]*Notification, error)
	UnreadByRelated(ctx context.Context, userID, notificationType, relatedID string) ([]*Notification, error)
	MarkAsRead(ctx context.Context, id, userID string) error
	MarkManyAsRead(ctx context.Context, ids []string, userID string) (int64, error)
	Delete(ctx context.Context, id, userID string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) ByUserID(
	ctx context.Context,
	userID string,
	limit, offset int,
) ([]*Notification, error) {
	var notifications []*Notification

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to get user notifications: %w", err)
	}

	return notifications, nil
}

func (r *notificationRepository) UnreadByRelated(
	ctx context.Context,
	userID, notificationType, relatedID string,
) ([]*Notification, error) {
	var notifications []*Notification

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND related_id = ? AND is_read = ?",
			userID, notificationType, relatedID, false).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get related notifications: %w", err)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", id, common.ErrNotFound)
	}

	return nil
}

func (r *notificationRepository) MarkManyAsRead(ctx context.Context, ids []string, userID string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Update("is_read", true)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).Delete(&Notification{}, "id = ? AND user_id = ?", id, userID)

	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", id, common.ErrNotFound)
	}

	return nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to get unread count: %w", err)
	}

	return count, nil
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, common.ErrNotFound)
}
