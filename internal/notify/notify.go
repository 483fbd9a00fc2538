// Package notify provides notification construction and delivery sinks.
package notify

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Success builds a success notification with a fresh ID.
func Success(text string) domain.Notification {
	return domain.Notification{ID: uuid.NewString(), Text: text, Level: domain.NotifySuccess}
}

// Error builds an error notification with a fresh ID.
func Error(text string) domain.Notification {
	return domain.Notification{ID: uuid.NewString(), Text: text, Level: domain.NotifyError}
}

// Info builds an informational notification with a fresh ID.
func Info(text string) domain.Notification {
	return domain.Notification{ID: uuid.NewString(), Text: text, Level: domain.NotifyInfo}
}

// Printer writes notifications to a stream, one line each.
// Used by CLI commands; the TUI consumes a Feed instead.
type Printer struct {
	Out io.Writer
}

var _ domain.Notifier = (*Printer)(nil)

// Notify implements domain.Notifier.
func (p *Printer) Notify(n domain.Notification) {
	switch n.Level {
	case domain.NotifyError:
		fmt.Fprintf(p.Out, "error: %s\n", n.Text)
	default:
		fmt.Fprintln(p.Out, n.Text)
	}
}

// Feed buffers notifications on a channel for an event-driven consumer.
// Delivery never blocks the producer: if the consumer lags, the oldest
// pending notification is dropped.
type Feed struct {
	ch chan domain.Notification
}

var _ domain.Notifier = (*Feed)(nil)

// NewFeed creates a Feed with the given buffer size.
func NewFeed(size int) *Feed {
	if size < 1 {
		size = 16
	}
	return &Feed{ch: make(chan domain.Notification, size)}
}

// Notify implements domain.Notifier.
func (f *Feed) Notify(n domain.Notification) {
	for {
		select {
		case f.ch <- n:
			return
		default:
			select {
			case <-f.ch:
			default:
			}
		}
	}
}

// C returns the receive side of the feed.
func (f *Feed) C() <-chan domain.Notification { return f.ch }
