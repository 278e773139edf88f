package secondary

import (
	"context"
	"time"
)

// Notifier defines the secondary port for OS-level shift reminders. The
// application only derives fire times; delivery is the adapter's concern.
type Notifier interface {
	// RequestPermission asks the platform for notification permission and
	// reports whether it was granted.
	RequestPermission(ctx context.Context) (bool, error)

	// Schedule registers one notification addressed by a stable numeric id.
	Schedule(ctx context.Context, id int64, fireAt time.Time, title, body string) error

	// Cancel removes the notifications with the given ids. Unknown ids are
	// ignored.
	Cancel(ctx context.Context, ids []int64) error
}
