package notif

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gatherchat/internal/common"
	"gatherchat/internal/config"
	"gatherchat/internal/dbmysql"
	"gatherchat/internal/notif/mocks"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *dbmysql.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ByUserID(ctx context.Context, userID string, limit, offset int) ([]*dbmysql.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	notifications, _ := args.Get(0).([]*dbmysql.Notification)
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) UnreadByRelated(ctx context.Context, userID, notificationType, relatedID string) ([]*dbmysql.Notification, error) {
	args := m.Called(ctx, userID, notificationType, relatedID)
	notifications, _ := args.Get(0).([]*dbmysql.Notification)
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkManyAsRead(ctx context.Context, ids []string, userID string) (int64, error) {
	args := m.Called(ctx, ids, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) UnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		Notification: config.NotificationConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			Enabled:         true,
		},
	}
}

func newTestService(t *testing.T) (*NotificationService, *MockNotificationRepository, *mocks.MockOrganizerLookup) {
	t.Helper()
	repo := new(MockNotificationRepository)
	events := mocks.NewMockOrganizerLookup(gomock.NewController(t))
	t.Cleanup(func() { repo.AssertExpectations(t) })
	return NewNotificationService(testConfig(), repo, events, zap.NewNop()), repo, events
}

func TestNotificationService_CreateApplicationNotification(t *testing.T) {
	svc, repo, events := newTestService(t)

	events.EXPECT().OrganizerID(gomock.Any(), "event-1").Return("organizer-1", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *dbmysql.Notification) bool {
		return n.UserID == "organizer-1" &&
			n.Type == "application" &&
			n.Title == "新しい応募があります" &&
			n.Content == "「Game Night」にaliceさんが応募しました。" &&
			n.RelatedID != nil && *n.RelatedID == "event-1"
	})).Return(nil)

	err := svc.CreateApplicationNotification(context.Background(), "event-1", "Game Night", "alice")
	assert.NoError(t, err)
}

func TestNotificationService_CreateApplicationNotification_UnknownEvent(t *testing.T) {
	svc, _, events := newTestService(t)

	events.EXPECT().OrganizerID(gomock.Any(), "missing").Return("", common.ErrNotFound)

	err := svc.CreateApplicationNotification(context.Background(), "missing", "Game Night", "alice")
	assert.NoError(t, err)
}

func TestNotificationService_CreateApplicationNotification_LookupError(t *testing.T) {
	svc, _, events := newTestService(t)

	events.EXPECT().OrganizerID(gomock.Any(), "event-1").Return("", errors.New("connection refused"))

	err := svc.CreateApplicationNotification(context.Background(), "event-1", "Game Night", "alice")
	assert.Error(t, err)
}

func TestNotificationService_CreateStatusChangeNotification(t *testing.T) {
	tests := []struct {
		name        string
		status      common.ApplicationStatus
		wantContent string
		wantErr     error
	}{
		{
			name:        "approved",
			status:      common.StatusApproved,
			wantContent: "「Game Night」の応募が承認されました。",
		},
		{
			name:        "rejected",
			status:      common.StatusRejected,
			wantContent: "「Game Night」の応募が却下されました。",
		},
		{
			name:    "unknown status",
			status:  "pending",
			wantErr: common.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(t)
			if tt.wantErr == nil {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(n *dbmysql.Notification) bool {
					return n.UserID == "applicant-1" &&
						n.Type == "status_change" &&
						n.Title == "応募ステータスが更新されました" &&
						n.Content == tt.wantContent &&
						*n.RelatedID == "app-1"
				})).Return(nil)
			}

			err := svc.CreateStatusChangeNotification(context.Background(), "app-1", "Game Night", tt.status, "applicant-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNotificationService_CreateMessageNotification(t *testing.T) {
	svc, repo, _ := newTestService(t)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *dbmysql.Notification) bool {
		return n.UserID == "bob" &&
			n.Type == "message" &&
			n.Title == "新しいメッセージがあります" &&
			n.Content == "「Game Night」でaliceさんからメッセージが届きました。" &&
			*n.RelatedID == "event-1"
	})).Return(nil)

	err := svc.CreateMessageNotification(context.Background(), "event-1", "Game Night", "alice", "bob")
	assert.NoError(t, err)
}

func TestNotificationService_CreateDonationNotification(t *testing.T) {
	svc, repo, _ := newTestService(t)

	var stored *dbmysql.Notification
	repo.On("Create", mock.Anything, mock.AnythingOfType("*dbmysql.Notification")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*dbmysql.Notification)
		}).
		Return(nil)

	err := svc.CreateDonationNotification(context.Background(), "event-1", "Game Night", "alice", 12345, "host-1")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "host-1", stored.UserID)
	assert.Equal(t, "system", stored.Type)
	assert.Equal(t, "投げ銭を受け取りました", stored.Title)
	assert.Equal(t, "「Game Night」でaliceさんから12,345円の投げ銭を受け取りました。", stored.Content)
	assert.Equal(t, "donation", stored.Data["kind"])
	assert.Equal(t, int64(12345), stored.Data["amount"])
}

func TestNotificationService_CreateDonationNotification_RejectsNonPositive(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.CreateDonationNotification(context.Background(), "event-1", "Game Night", "alice", 0, "host-1")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestNotificationService_FormatAmount(t *testing.T) {
	svc, _, _ := newTestService(t)

	assert.Equal(t, "500", svc.FormatAmount(500))
	assert.Equal(t, "12,345", svc.FormatAmount(12345))
	assert.Equal(t, "1,000,000", svc.FormatAmount(1000000))
}

func TestNotificationService_CreateNotification_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name  string
		event common.NotificationEvent
	}{
		{"missing user", common.NotificationEvent{Type: common.SystemType, Title: "t", Message: "m"}},
		{"unknown type", common.NotificationEvent{UserID: "u", Type: "push", Title: "t", Message: "m"}},
		{"missing title", common.NotificationEvent{UserID: "u", Type: common.SystemType, Message: "m"}},
		{"missing message", common.NotificationEvent{UserID: "u", Type: common.SystemType, Title: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateNotification(context.Background(), tt.event)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestNotificationService_CreateNotification_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Notification.Enabled = false
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(cfg, repo, nil, zap.NewNop())

	err := svc.CreateNotification(context.Background(), common.NotificationEvent{
		UserID: "u", Type: common.SystemType, Title: "t", Message: "m",
	})
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNotificationService_CreateNotification_StoreError(t *testing.T) {
	svc, repo, _ := newTestService(t)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("deadlock"))

	err := svc.CreateNotification(context.Background(), common.NotificationEvent{
		UserID: "u", Type: common.SystemType, Title: "t", Message: "m",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database_observer")
}

func TestNotificationService_FetchUserNotifications(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"default page size", 0, 0, 20, 0},
		{"clamped to max", 500, 40, 100, 40},
		{"negative offset", 10, -5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(t)
			repo.On("ByUserID", mock.Anything, "user-1", tt.wantLimit, tt.wantOffset).
				Return([]*dbmysql.Notification{{ID: "n-1"}}, nil)

			got := svc.FetchUserNotifications(context.Background(), "user-1", tt.limit, tt.offset)
			require.Len(t, got, 1)
			assert.Equal(t, "n-1", got[0].ID)
		})
	}
}

func TestNotificationService_FetchUserNotifications_ErrorYieldsEmpty(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.On("ByUserID", mock.Anything, "user-1", 20, 0).Return(nil, errors.New("timeout"))

	got := svc.FetchUserNotifications(context.Background(), "user-1", 0, 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, svc.FetchUserNotifications(context.Background(), "", 0, 0))
}

func TestNotificationService_UnreadCount(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.On("UnreadCount", mock.Anything, "user-1").Return(int64(3), nil).Once()
	repo.On("UnreadCount", mock.Anything, "user-2").Return(int64(0), errors.New("gone")).Once()

	assert.Equal(t, int64(3), svc.UnreadCount(context.Background(), "user-1"))
	assert.Equal(t, int64(0), svc.UnreadCount(context.Background(), "user-2"))
	assert.Equal(t, int64(0), svc.UnreadCount(context.Background(), ""))
}

func TestNotificationService_MarkAsReadAndDelete(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.On("MarkAsRead", mock.Anything, "n-1", "user-1").Return(nil)
	repo.On("Delete", mock.Anything, "n-2", "user-1").Return(common.ErrNotFound)

	assert.NoError(t, svc.MarkAsRead(context.Background(), "n-1", "user-1"))
	assert.ErrorIs(t, svc.DeleteNotification(context.Background(), "n-2", "user-1"), common.ErrNotFound)
	assert.ErrorIs(t, svc.MarkAsRead(context.Background(), "n-1", ""), common.ErrNotAuthenticated)
}

func TestNotificationService_MarkMessageNotificationsAsRead(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.On("UnreadByRelated", mock.Anything, "user-1", "message", "event-1").
		Return([]*dbmysql.Notification{{ID: "n-1"}, {ID: "n-2"}}, nil)
	repo.On("MarkManyAsRead", mock.Anything, []string{"n-1", "n-2"}, "user-1").Return(int64(2), nil)

	assert.NoError(t, svc.MarkMessageNotificationsAsRead(context.Background(), "user-1", "event-1"))
}

func TestNotificationService_MarkMessageNotificationsAsRead_NothingUnread(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.On("UnreadByRelated", mock.Anything, "user-1", "message", "event-1").
		Return([]*dbmysql.Notification{}, nil)

	assert.NoError(t, svc.MarkMessageNotificationsAsRead(context.Background(), "user-1", "event-1"))
	repo.AssertNotCalled(t, "MarkManyAsRead", mock.Anything, mock.Anything, mock.Anything)
}
