package common

type NotificationType string

const (
	ApplicationType  NotificationType = "application"
	StatusChangeType NotificationType = "status_change"
	EventUpdateType  NotificationType = "event_update"
	SystemType       NotificationType = "system"
	MessageType      NotificationType = "message"
	DonationType     NotificationType = "donation"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case ApplicationType, StatusChangeType, EventUpdateType, SystemType, MessageType, DonationType:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// NotificationData is the free-form payload attached to generic notifications.
type NotificationData map[string]interface{}

type NotificationEvent struct {
	Type      NotificationType
	UserID    string
	Title     string
	Message   string
	RelatedID *string
	Data      NotificationData
}
