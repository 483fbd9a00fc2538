package tui

import "github.com/taskdeck/taskdeck/internal/domain"

// Msg is the interface for all dashboard messages.
// All message types implement this sealed interface.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgStoreChanged is sent whenever the task store mutated, whatever the
// source (user action, push-triggered refetch, prune timer).
type MsgStoreChanged struct{}

func (MsgStoreChanged) sealed() {}

// MsgNotification carries a transient user-visible notification.
type MsgNotification struct {
	Notification domain.Notification
}

func (MsgNotification) sealed() {}

// MsgNotificationExpired clears the notification line if it still shows
// the notification with the given ID.
type MsgNotificationExpired struct {
	ID string
}

func (MsgNotificationExpired) sealed() {}

// MsgMutationDone is sent when a create/status/delete round trip ends.
// The user-facing outcome has already been notified; Err only carries
// inline form validation feedback.
type MsgMutationDone struct {
	Err error
}

func (MsgMutationDone) sealed() {}

// MsgAnalyticsLoaded is sent when the analytics panel data arrives.
type MsgAnalyticsLoaded struct {
	Analytics *domain.Analytics
	Err       error
}

func (MsgAnalyticsLoaded) sealed() {}
