package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatherchat/internal/dbmysql"
)

func ts(sec int) time.Time {
	return time.Date(2025, 6, 1, 12, 0, sec, 0, time.UTC)
}

func TestGroupConversations_Properties(t *testing.T) {
	messages := []*dbmysql.Message{
		{EventID: "E1", SenderID: "B", ReceiverID: "A", Content: "late", CreatedAt: ts(30)},
		{EventID: "E1", SenderID: "A", ReceiverID: "B", Content: "mine", CreatedAt: ts(25)},
		{EventID: "E2", SenderID: "B", ReceiverID: "A", Content: "other event", CreatedAt: ts(20), IsRead: true},
		{EventID: "E1", SenderID: "B", ReceiverID: "A", Content: "early", CreatedAt: ts(5)},
	}

	got := groupConversations(messages, "A")
	require.Len(t, got, 2)

	seen := map[conversationKey]bool{}
	for _, c := range got {
		key := conversationKey{c.EventID, c.OtherUserID}
		assert.False(t, seen[key], "duplicate summary for %v", key)
		seen[key] = true
	}

	assert.Equal(t, ts(30), *got[0].LastMessageTime)
	assert.Equal(t, "late", got[0].LastMessage)
	assert.Equal(t, 2, got[0].UnreadCount)
	assert.Equal(t, 0, got[1].UnreadCount)
}

func TestGroupConversations_LatestWinsRegardlessOfOrder(t *testing.T) {
	messages := []*dbmysql.Message{
		{EventID: "E1", SenderID: "A", ReceiverID: "B", Content: "first", CreatedAt: ts(10)},
		{EventID: "E1", SenderID: "B", ReceiverID: "A", Content: "second", CreatedAt: ts(20)},
		{EventID: "E1", SenderID: "B", ReceiverID: "A", Content: "same time", CreatedAt: ts(20)},
	}

	got := groupConversations(messages, "A")
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].LastMessage, "ties keep the earlier seen message")
	assert.Equal(t, ts(20), *got[0].LastMessageTime)
}

func TestGroupConversations_SelfMessages(t *testing.T) {
	messages := []*dbmysql.Message{
		{EventID: "E1", SenderID: "A", ReceiverID: "A", Content: "note to self", CreatedAt: ts(1)},
		{EventID: "E1", SenderID: "A", ReceiverID: "A", Content: "read note", IsRead: true, CreatedAt: ts(2)},
	}

	got := groupConversations(messages, "A")
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].OtherUserID)
	assert.Equal(t, 1, got[0].UnreadCount, "unread self-messages count like any received message")
}

func TestGroupConversations_Empty(t *testing.T) {
	got := groupConversations(nil, "A")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
