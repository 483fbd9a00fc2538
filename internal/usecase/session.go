package usecase

import "github.com/taskdeck/taskdeck/internal/domain"

// Session is the part of the authenticated session the use cases need.
// Invalidate must be safe to call concurrently and tear down at most once.
type Session interface {
	Invalidate() bool
}

// invalidateOnAuthError tears the session down when an adapter call came
// back with an auth failure. The session guarantees exactly-once teardown,
// so concurrent callers may all report the same expired credential.
func invalidateOnAuthError(sess Session, err error) {
	if sess == nil || err == nil {
		return
	}
	if domain.IsAuthError(err) {
		sess.Invalidate()
	}
}
