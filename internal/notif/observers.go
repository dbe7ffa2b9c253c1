package notif

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"gatherchat/internal/common"
	"gatherchat/internal/dbmysql"
)

// Observer receives every notification event published by the manager.
type Observer interface {
	Name() string
	Update(ctx context.Context, event common.NotificationEvent) error
}

// DatabaseNotificationObserver persists events as notification rows.
type DatabaseNotificationObserver struct {
	repo dbmysql.NotificationRepository
}

func NewDatabaseNotificationObserver(repo dbmysql.NotificationRepository) *DatabaseNotificationObserver {
	return &DatabaseNotificationObserver{
		repo: repo,
	}
}

func (d *DatabaseNotificationObserver) Name() string {
	return "database_observer"
}

func (d *DatabaseNotificationObserver) Update(ctx context.Context, event common.NotificationEvent) error {
	notification := &dbmysql.Notification{
		UserID:    event.UserID,
		Title:     event.Title,
		Content:   event.Message,
		Type:      string(event.Type),
		RelatedID: event.RelatedID,
	}
	if len(event.Data) > 0 {
		notification.Data = datatypes.JSONMap(event.Data)
	}

	if err := d.repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	return nil
}

// LogNotificationObserver records each delivered event at debug level.
type LogNotificationObserver struct {
	log *zap.Logger
}

func NewLogNotificationObserver(log *zap.Logger) *LogNotificationObserver {
	return &LogNotificationObserver{log: log}
}

func (l *LogNotificationObserver) Name() string {
	return "log_observer"
}

func (l *LogNotificationObserver) Update(_ context.Context, event common.NotificationEvent) error {
	fields := []zap.Field{
		zap.String("type", string(event.Type)),
		zap.String("user_id", event.UserID),
	}
	if event.RelatedID != nil {
		fields = append(fields, zap.String("related_id", *event.RelatedID))
	}
	l.log.Debug("notification delivered", fields...)
	return nil
}
