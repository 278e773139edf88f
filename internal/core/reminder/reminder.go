// Package reminder contains the pure fire-time derivation for shift
// notifications. Actual scheduling is performed by a Notifier adapter.
package reminder

import (
	"fmt"
	"hash/fnv"
	"time"
)

// Kind distinguishes the two reminders derived for a shift.
type Kind string

// Reminder kinds
const (
	KindStart Kind = "start"
	KindEnd   Kind = "end"
)

// Lead times before the shift boundaries.
const (
	startLead = 60 * time.Minute
	endLead   = 15 * time.Minute
)

// Reminder is one derived notification request.
type Reminder struct {
	ID     int64
	Kind   Kind
	FireAt time.Time
	Title  string
	Body   string
}

// ID derives the stable numeric identifier for a shift's reminder of the
// given kind. The mapping is deterministic so a later update or delete can
// cancel exactly the two reminders belonging to that shift.
func ID(shiftID string, kind Kind) int64 {
	h := fnv.New32a()
	h.Write([]byte(shiftID + ":" + string(kind)))
	return int64(h.Sum32())
}

// IDs returns both reminder identifiers for a shift, for cancellation.
func IDs(shiftID string) []int64 {
	return []int64{ID(shiftID, KindStart), ID(shiftID, KindEnd)}
}

// Derive computes the reminders for a shift: one 60 minutes before the
// start instant and one 15 minutes before the end instant. When the end
// wall-clock time is not after the start, the shift is treated as overnight
// and the end instant advances by one day. Fire times not strictly in the
// future at now are dropped.
func Derive(shiftID string, date time.Time, startTime, endTime, hospitalName string, now time.Time) []Reminder {
	startAt, err := combine(date, startTime)
	if err != nil {
		return nil
	}
	endAt, err := combine(date, endTime)
	if err != nil {
		return nil
	}
	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}

	candidates := []Reminder{
		{
			ID:     ID(shiftID, KindStart),
			Kind:   KindStart,
			FireAt: startAt.Add(-startLead),
			Title:  "Upcoming shift",
			Body:   fmt.Sprintf("Your shift at %s starts at %s", hospitalName, startTime),
		},
		{
			ID:     ID(shiftID, KindEnd),
			Kind:   KindEnd,
			FireAt: endAt.Add(-endLead),
			Title:  "Shift ending soon",
			Body:   fmt.Sprintf("Your shift at %s ends at %s", hospitalName, endTime),
		},
	}

	var due []Reminder
	for _, r := range candidates {
		if r.FireAt.After(now) {
			due = append(due, r)
		}
	}
	return due
}

// combine anchors a "HH:MM" wall-clock time onto the given date.
func combine(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
