package domain

import "time"

// NotificationType categorizes broadcast notifications for the dashboard.
type NotificationType string

const (
	NotificationTypeUpdate  NotificationType = "update"
	NotificationTypeOffer   NotificationType = "offer"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
)

// ValidNotificationType reports whether t is a known category.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationTypeUpdate, NotificationTypeOffer, NotificationTypeSuccess, NotificationTypeWarning:
		return true
	}
	return false
}

// Notification is a broadcast message shown on the dashboard. The read flag is
// shared across viewers: the portal is operated as a single support inbox.
type Notification struct {
	ID          string
	Title       string
	Description string
	Type        NotificationType
	IsRead      bool
	Time        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
