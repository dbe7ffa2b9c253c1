package notif

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gatherchat/internal/common"
	"gatherchat/internal/config"
	"gatherchat/internal/dbmysql"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const (
	applicationTitle  = "新しい応募があります"
	statusChangeTitle = "応募ステータスが更新されました"
	messageTitle      = "新しいメッセージがあります"
	donationTitle     = "投げ銭を受け取りました"
)

var statusLabels = map[common.ApplicationStatus]string{
	common.StatusApproved: "承認",
	common.StatusRejected: "却下",
}

type OrganizerLookup interface {
	OrganizerID(ctx context.Context, eventID string) (string, error)
}

// Service is what the HTTP layer needs from notifications.
type Service interface {
	CreateNotification(ctx context.Context, event common.NotificationEvent) error
	CreateApplicationNotification(ctx context.Context, eventID, eventTitle, applicantUsername string) error
	CreateStatusChangeNotification(ctx context.Context, applicationID, eventTitle string, status common.ApplicationStatus, applicantID string) error
	CreateDonationNotification(ctx context.Context, eventID, eventTitle, donorUsername string, amount int64, recipientID string) error
	FetchUserNotifications(ctx context.Context, userID string, limit, offset int) []*dbmysql.Notification
	MarkAsRead(ctx context.Context, notificationID, userID string) error
	DeleteNotification(ctx context.Context, notificationID, userID string) error
	UnreadCount(ctx context.Context, userID string) int64
}

type NotificationService struct {
	manager *NotificationManager
	repo    dbmysql.NotificationRepository
	events  OrganizerLookup
	cfg     config.NotificationConfig
	printer *message.Printer
	log     *zap.Logger
}

func NewNotificationService(
	cfg *config.Config,
	repo dbmysql.NotificationRepository,
	events OrganizerLookup,
	log *zap.Logger,
) *NotificationService {
	manager := NewNotificationManager(log)
	manager.Subscribe(NewDatabaseNotificationObserver(repo))
	manager.Subscribe(NewLogNotificationObserver(log))

	return &NotificationService{
		manager: manager,
		repo:    repo,
		events:  events,
		cfg:     cfg.Notification,
		printer: message.NewPrinter(language.Japanese),
		log:     log,
	}
}

func (s *NotificationService) Manager() *NotificationManager {
	return s.manager
}

func (s *NotificationService) CreateNotification(ctx context.Context, event common.NotificationEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	if !s.cfg.Enabled {
		s.log.Debug("notifications disabled, dropping event", zap.String("type", string(event.Type)))
		return nil
	}

	if err := s.manager.Notify(ctx, event); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// CreateApplicationNotification tells the event organizer about a new
// applicant. Unknown events are ignored.
func (s *NotificationService) CreateApplicationNotification(ctx context.Context, eventID, eventTitle, applicantUsername string) error {
	organizerID, err := s.events.OrganizerID(ctx, eventID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Info("application notification for unknown event", zap.String("event_id", eventID))
			return nil
		}
		return err
	}

	return s.CreateNotification(ctx, common.NotificationEvent{
		Type:      common.ApplicationType,
		UserID:    organizerID,
		Title:     applicationTitle,
		Message:   fmt.Sprintf("「%s」に%sさんが応募しました。", eventTitle, applicantUsername),
		RelatedID: &eventID,
	})
}

func (s *NotificationService) CreateStatusChangeNotification(
	ctx context.Context,
	applicationID, eventTitle string,
	status common.ApplicationStatus,
	applicantID string,
) error {
	label, ok := statusLabels[status]
	if !ok {
		return fmt.Errorf("%w: unknown application status %q", common.ErrInvalidInput, status)
	}

	return s.CreateNotification(ctx, common.NotificationEvent{
		Type:      common.StatusChangeType,
		UserID:    applicantID,
		Title:     statusChangeTitle,
		Message:   fmt.Sprintf("「%s」の応募が%sされました。", eventTitle, label),
		RelatedID: &applicationID,
	})
}

func (s *NotificationService) CreateMessageNotification(ctx context.Context, eventID, eventTitle, senderUsername, receiverID string) error {
	return s.CreateNotification(ctx, common.NotificationEvent{
		Type:      common.MessageType,
		UserID:    receiverID,
		Title:     messageTitle,
		Message:   fmt.Sprintf("「%s」で%sさんからメッセージが届きました。", eventTitle, senderUsername),
		RelatedID: &eventID,
	})
}

// CreateDonationNotification is stored with type system, as donations have no
// dedicated inbox view.
func (s *NotificationService) CreateDonationNotification(
	ctx context.Context,
	eventID, eventTitle, donorUsername string,
	amount int64,
	recipientID string,
) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", common.ErrInvalidInput)
	}

	return s.CreateNotification(ctx, common.NotificationEvent{
		Type:      common.SystemType,
		UserID:    recipientID,
		Title:     donationTitle,
		Message:   fmt.Sprintf("「%s」で%sさんから%s円の投げ銭を受け取りました。", eventTitle, donorUsername, s.FormatAmount(amount)),
		RelatedID: &eventID,
		Data: common.NotificationData{
			"kind":   string(common.DonationType),
			"amount": amount,
		},
	})
}

// FormatAmount renders amount with Japanese digit grouping, e.g. 12,345.
func (s *NotificationService) FormatAmount(amount int64) string {
	return s.printer.Sprintf("%d", amount)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID, userID string) error {
	if userID == "" {
		return common.ErrNotAuthenticated
	}
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

// MarkMessageNotificationsAsRead marks the user's unread message notifications
// for eventID as read.
func (s *NotificationService) MarkMessageNotificationsAsRead(ctx context.Context, userID, eventID string) error {
	unread, err := s.repo.UnreadByRelated(ctx, userID, string(common.MessageType), eventID)
	if err != nil {
		return err
	}
	if len(unread) == 0 {
		return nil
	}

	ids := make([]string, 0, len(unread))
	for _, n := range unread {
		ids = append(ids, n.ID)
	}

	updated, err := s.repo.MarkManyAsRead(ctx, ids, userID)
	if err != nil {
		return err
	}
	s.log.Debug("message notifications marked as read",
		zap.String("user_id", userID),
		zap.String("event_id", eventID),
		zap.Int64("count", updated))
	return nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, notificationID, userID string) error {
	if userID == "" {
		return common.ErrNotAuthenticated
	}
	return s.repo.Delete(ctx, notificationID, userID)
}

func (s *NotificationService) FetchUserNotifications(ctx context.Context, userID string, limit, offset int) []*dbmysql.Notification {
	if userID == "" {
		return []*dbmysql.Notification{}
	}

	limit, offset = s.page(limit, offset)
	notifications, err := s.repo.ByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("failed to fetch notifications", zap.String("user_id", userID), zap.Error(err))
		return []*dbmysql.Notification{}
	}
	if notifications == nil {
		notifications = []*dbmysql.Notification{}
	}
	return notifications
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) int64 {
	if userID == "" {
		return 0
	}
	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		s.log.Error("failed to get unread notification count", zap.String("user_id", userID), zap.Error(err))
		return 0
	}
	return count
}

func (s *NotificationService) page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func validateEvent(event common.NotificationEvent) error {
	if event.UserID == "" {
		return fmt.Errorf("%w: user_id is required", common.ErrInvalidInput)
	}
	if !event.Type.IsValid() {
		return fmt.Errorf("%w: unknown notification type %q", common.ErrInvalidInput, event.Type)
	}
	if event.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	}
	if event.Message == "" {
		return fmt.Errorf("%w: message is required", common.ErrInvalidInput)
	}
	return nil
}
