package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gatherchat/internal/chat/repository"
	"gatherchat/internal/common"
	"gatherchat/internal/dbmysql"
)

//go:generate mockgen -source=chat_service.go -destination=mocks/mock_chat_service.go -package=mocks

// ProfileLookup resolves display data for message participants.
type ProfileLookup interface {
	UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	ByIDs(ctx context.Context, ids []string) ([]*dbmysql.Profile, error)
}

type EventLookup interface {
	TitlesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	Title(ctx context.Context, id string) (string, error)
}

// Notifier is the notification side of messaging. Calls are best-effort.
type Notifier interface {
	CreateMessageNotification(ctx context.Context, eventID, eventTitle, senderUsername, receiverID string) error
	MarkMessageNotificationsAsRead(ctx context.Context, userID, eventID string) error
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	EventID    string `json:"event_id" validate:"required,uuid"`
	Content    string `json:"content" validate:"required,max=2000"`
}

// ChatService defines the interface exposed to the handler layer
type ChatService interface {
	SendMessage(ctx context.Context, senderID string, req SendMessageRequest) (*dbmysql.Message, error)
	FetchConversations(ctx context.Context, userID string) []*Conversation
	FetchConversation(ctx context.Context, userID, eventID, otherUserID string) []*ThreadMessage
	MarkMessageAsRead(ctx context.Context, userID, messageID string) error
	MarkConversationAsRead(ctx context.Context, userID, eventID, otherUserID string) error
	DeleteMessage(ctx context.Context, userID, messageID string) error
	UnreadMessageCount(ctx context.Context, userID string) int64
}

type chatService struct {
	repo     repository.MessageRepository
	profiles ProfileLookup
	events   EventLookup
	notifier Notifier
	log      *zap.Logger
}

// Constructor used in DI/wire
func NewChatService(
	repo repository.MessageRepository,
	profiles ProfileLookup,
	events EventLookup,
	notifier Notifier,
	log *zap.Logger,
) ChatService {
	return &chatService{
		repo:     repo,
		profiles: profiles,
		events:   events,
		notifier: notifier,
		log:      log,
	}
}

func (s *chatService) SendMessage(ctx context.Context, senderID string, req SendMessageRequest) (*dbmysql.Message, error) {
	if senderID == "" {
		return nil, common.ErrNotAuthenticated
	}

	req.Content = strings.TrimSpace(req.Content)
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	msg := &dbmysql.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		EventID:    req.EventID,
		Content:    req.Content,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if err := s.notifyReceiver(ctx, msg); err != nil {
		s.log.Warn("failed to create message notification",
			zap.String("message_id", msg.ID),
			zap.String("receiver_id", msg.ReceiverID),
			zap.Error(err))
	}

	return msg, nil
}

// notifyReceiver creates the receiver's message notification. Nothing is sent
// when the sender has no username or the event has no title.
func (s *chatService) notifyReceiver(ctx context.Context, msg *dbmysql.Message) error {
	names, err := s.profiles.UsernamesByIDs(ctx, []string{msg.SenderID})
	if err != nil {
		return fmt.Errorf("sender lookup: %w", err)
	}

	title, err := s.events.Title(ctx, msg.EventID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("event lookup: %w", err)
	}

	username := names[msg.SenderID]
	if username == "" || title == "" {
		return nil
	}

	return s.notifier.CreateMessageNotification(ctx, msg.EventID, title, username, msg.ReceiverID)
}

func (s *chatService) MarkMessageAsRead(ctx context.Context, userID, messageID string) error {
	if userID == "" {
		return common.ErrNotAuthenticated
	}
	return s.repo.MarkAsRead(ctx, messageID, userID)
}

func (s *chatService) MarkConversationAsRead(ctx context.Context, userID, eventID, otherUserID string) error {
	if userID == "" {
		return common.ErrNotAuthenticated
	}

	n, err := s.repo.MarkThreadAsRead(ctx, eventID, userID, otherUserID)
	if err != nil {
		return err
	}
	s.log.Debug("conversation marked as read",
		zap.String("user_id", userID),
		zap.String("event_id", eventID),
		zap.Int64("messages", n))

	if err := s.notifier.MarkMessageNotificationsAsRead(ctx, userID, eventID); err != nil {
		s.log.Warn("failed to mark message notifications as read",
			zap.String("user_id", userID),
			zap.String("event_id", eventID),
			zap.Error(err))
	}
	return nil
}

func (s *chatService) DeleteMessage(ctx context.Context, userID, messageID string) error {
	if userID == "" {
		return common.ErrNotAuthenticated
	}
	return s.repo.Delete(ctx, messageID, userID)
}

func (s *chatService) UnreadMessageCount(ctx context.Context, userID string) int64 {
	if userID == "" {
		return 0
	}
	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		s.log.Error("failed to get unread message count", zap.String("user_id", userID), zap.Error(err))
		return 0
	}
	return count
}
