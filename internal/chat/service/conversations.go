package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"gatherchat/internal/dbmysql"
)

// Conversation summarizes every message between the caller and one
// counterparty about one event. It is rebuilt on each fetch.
type Conversation struct {
	EventID           string     `json:"event_id"`
	EventTitle        string     `json:"event_title"`
	OtherUserID       string     `json:"other_user_id"`
	OtherUserUsername string     `json:"other_user_username"`
	LastMessage       string     `json:"last_message,omitempty"`
	LastMessageTime   *time.Time `json:"last_message_time,omitempty"`
	UnreadCount       int        `json:"unread_count"`
}

type conversationKey struct {
	eventID     string
	otherUserID string
}

// ParticipantProfile is the public part of a profile shown next to a message.
type ParticipantProfile struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// ThreadMessage is one message of a thread with both participants' profiles.
type ThreadMessage struct {
	*dbmysql.Message
	SenderProfile   *ParticipantProfile `json:"sender_profile,omitempty"`
	ReceiverProfile *ParticipantProfile `json:"receiver_profile,omitempty"`
}

// counterparty returns the participant of msg that is not userID. A message
// to oneself has the user as its own counterparty.
func counterparty(msg *dbmysql.Message, userID string) string {
	if msg.SenderID == userID {
		return msg.ReceiverID
	}
	return msg.SenderID
}

// isUnreadFor reports whether msg counts as unread for userID. A message the
// user sent to themselves counts like any other message they received.
func isUnreadFor(msg *dbmysql.Message, userID string) bool {
	return !msg.IsRead && msg.ReceiverID == userID
}

// groupConversations folds messages into one summary per (event, counterparty)
// in first-seen order.
func groupConversations(messages []*dbmysql.Message, userID string) []*Conversation {
	index := make(map[conversationKey]*Conversation, len(messages))
	conversations := make([]*Conversation, 0)

	for _, msg := range messages {
		key := conversationKey{eventID: msg.EventID, otherUserID: counterparty(msg, userID)}

		conv, ok := index[key]
		if !ok {
			conv = &Conversation{EventID: key.eventID, OtherUserID: key.otherUserID}
			index[key] = conv
			conversations = append(conversations, conv)
		}

		if conv.LastMessageTime == nil || msg.CreatedAt.After(*conv.LastMessageTime) {
			createdAt := msg.CreatedAt
			conv.LastMessage = msg.Content
			conv.LastMessageTime = &createdAt
		}

		if isUnreadFor(msg, userID) {
			conv.UnreadCount++
		}
	}

	return conversations
}

func (s *chatService) FetchConversations(ctx context.Context, userID string) []*Conversation {
	if userID == "" {
		return []*Conversation{}
	}

	messages, err := s.repo.ByParticipant(ctx, userID)
	if err != nil {
		s.log.Error("failed to fetch conversations", zap.String("user_id", userID), zap.Error(err))
		return []*Conversation{}
	}

	conversations := groupConversations(messages, userID)
	if len(conversations) == 0 {
		return conversations
	}

	eventIDs := lo.Uniq(lo.Map(conversations, func(c *Conversation, _ int) string { return c.EventID }))
	titles, err := s.events.TitlesByIDs(ctx, eventIDs)
	if err != nil {
		s.log.Error("failed to fetch conversation events", zap.String("user_id", userID), zap.Error(err))
		return []*Conversation{}
	}

	userIDs := lo.Uniq(lo.Map(conversations, func(c *Conversation, _ int) string { return c.OtherUserID }))
	usernames, err := s.profiles.UsernamesByIDs(ctx, userIDs)
	if err != nil {
		s.log.Error("failed to fetch conversation profiles", zap.String("user_id", userID), zap.Error(err))
		return []*Conversation{}
	}

	for _, conv := range conversations {
		conv.EventTitle = titles[conv.EventID]
		conv.OtherUserUsername = usernames[conv.OtherUserID]
	}
	return conversations
}

func (s *chatService) FetchConversation(ctx context.Context, userID, eventID, otherUserID string) []*ThreadMessage {
	if userID == "" {
		return []*ThreadMessage{}
	}

	messages, err := s.repo.Thread(ctx, eventID, userID, otherUserID)
	if err != nil {
		s.log.Error("failed to fetch conversation",
			zap.String("user_id", userID),
			zap.String("event_id", eventID),
			zap.Error(err))
		return []*ThreadMessage{}
	}

	thread := lo.Map(messages, func(m *dbmysql.Message, _ int) *ThreadMessage {
		return &ThreadMessage{Message: m}
	})
	if len(thread) == 0 {
		return thread
	}

	ids := lo.Uniq(lo.FlatMap(messages, func(m *dbmysql.Message, _ int) []string {
		return []string{m.SenderID, m.ReceiverID}
	}))
	profiles, err := s.profiles.ByIDs(ctx, ids)
	if err != nil {
		s.log.Warn("failed to fetch conversation profiles",
			zap.String("user_id", userID),
			zap.String("event_id", eventID),
			zap.Error(err))
		return thread
	}

	byID := lo.SliceToMap(profiles, func(p *dbmysql.Profile) (string, *ParticipantProfile) {
		return p.ID, &ParticipantProfile{Username: p.Username, AvatarURL: p.AvatarURL}
	})
	for _, tm := range thread {
		tm.SenderProfile = byID[tm.SenderID]
		tm.ReceiverProfile = byID[tm.ReceiverID]
	}
	return thread
}
