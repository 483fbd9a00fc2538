// Package push maintains the WebSocket connection that tells the client
// when its task collection is stale. The channel carries no task data;
// every signal means "refetch".
package push

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// taskUpdateMessage is the only payload the server broadcasts today.
// Anything else is ignored so future message types stay backward
// compatible with running clients.
const taskUpdateMessage = "task_update"

const (
	defaultInitialBackoff = time.Second
	defaultMaxBackoff     = 30 * time.Second
)

// Listener supervises a WebSocket connection to the server's /ws endpoint
// and emits a signal whenever the task collection changed remotely.
// Fields are ordered to minimize memory padding.
type Listener struct {
	dialer         *websocket.Dialer
	logger         domain.Logger
	username       func() string
	signals        chan struct{}
	baseURL        string
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// Option configures a Listener.
type Option func(*Listener)

// WithBackoff overrides the reconnect backoff bounds.
func WithBackoff(initial, max time.Duration) Option {
	return func(l *Listener) {
		l.initialBackoff = initial
		l.maxBackoff = max
	}
}

// New creates a Listener for the given HTTP base URL. username is read
// at dial time so the listener follows login and logout; it may return
// "" for an anonymous connection.
func New(baseURL string, username func() string, logger domain.Logger, opts ...Option) *Listener {
	l := &Listener{
		dialer:         websocket.DefaultDialer,
		logger:         logger,
		username:       username,
		signals:        make(chan struct{}, 1),
		baseURL:        strings.TrimRight(baseURL, "/"),
		initialBackoff: defaultInitialBackoff,
		maxBackoff:     defaultMaxBackoff,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Signals returns the channel that fires when a refetch is due. The
// channel has capacity 1; coalescing bursts into one pending signal is
// intentional since every signal triggers the same full refetch.
func (l *Listener) Signals() <-chan struct{} { return l.signals }

// wsURL derives the WebSocket endpoint from the HTTP base URL.
func (l *Listener) wsURL() (string, error) {
	u, err := url.Parse(l.baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	name := l.username()
	if name == "" {
		name = "anon"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws/" + url.PathEscape(name)
	return u.String(), nil
}

// Run connects and reads until ctx is cancelled, reconnecting with
// exponential backoff after any failure. While disconnected at the
// backoff cap it keeps emitting signals so the client degrades to
// polling instead of silently drifting stale.
func (l *Listener) Run(ctx context.Context) {
	backoff := l.initialBackoff
	for {
		if ctx.Err() != nil {
			return
		}

		connected, err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		if connected {
			backoff = l.initialBackoff
		}
		l.logger.Warn("push connection lost", "error", err, "retry_in", backoff)

		if backoff >= l.maxBackoff {
			l.emit()
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > l.maxBackoff {
			backoff = l.maxBackoff
		}
	}
}

// listen dials and reads messages until the connection breaks. The bool
// reports whether a connection was established at all, which resets the
// reconnect backoff.
func (l *Listener) listen(ctx context.Context) (bool, error) {
	target, err := l.wsURL()
	if err != nil {
		return false, err
	}

	conn, _, err := l.dialer.DialContext(ctx, target, nil)
	if err != nil {
		return false, err
	}
	defer conn.Close()
	l.logger.Info("push connected", "url", target)

	// Close the connection when ctx ends so ReadMessage unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return true, err
		}
		if string(message) == taskUpdateMessage {
			l.emit()
		} else {
			l.logger.Debug("ignoring push message", "message", string(message))
		}
	}
}

// emit delivers a signal without blocking.
func (l *Listener) emit() {
	select {
	case l.signals <- struct{}{}:
	default:
	}
}
