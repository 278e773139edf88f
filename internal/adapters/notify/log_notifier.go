// Package notify contains the logging Notifier adapter. OS-level delivery
// is platform glue outside this module; this adapter records every
// schedule and cancel request so embedding shells can replay them against
// a native notification API.
package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/shiftledger/internal/ports/secondary"
)

// LogNotifier implements secondary.Notifier by writing structured log
// entries. Permission is always granted in this environment.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a logging notifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// RequestPermission reports permission as granted.
func (n *LogNotifier) RequestPermission(ctx context.Context) (bool, error) {
	n.log.Debug().Msg("notification permission requested")
	return true, nil
}

// Schedule records one notification request.
func (n *LogNotifier) Schedule(ctx context.Context, id int64, fireAt time.Time, title, body string) error {
	n.log.Info().
		Int64("id", id).
		Time("fire_at", fireAt).
		Str("title", title).
		Str("body", body).
		Msg("reminder scheduled")
	return nil
}

// Cancel records a cancellation request.
func (n *LogNotifier) Cancel(ctx context.Context, ids []int64) error {
	n.log.Info().Ints64("ids", ids).Msg("reminders cancelled")
	return nil
}

// Ensure LogNotifier implements the interface
var _ secondary.Notifier = (*LogNotifier)(nil)
