package domain

// NotificationLevel classifies a notification for display.
type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
	NotifyInfo    NotificationLevel = "info"
)

// Notification is a transient user-visible message.
// Fields are ordered to minimize memory padding.
type Notification struct {
	ID    string // Unique per emission
	Text  string
	Level NotificationLevel
}
