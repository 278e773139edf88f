// Package sqlite contains the SQLite implementation of the local snapshot
// store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/shiftledger/internal/ports/secondary"
)

// Slot is the name of the single snapshot row used by the application.
const Slot = "shiftledger"

// SnapshotRepository implements secondary.SnapshotStore with a single-row
// key-value slot holding the JSON-serialized ledger.
type SnapshotRepository struct {
	db   *sql.DB
	slot string
}

// NewSnapshotRepository creates a snapshot repository on the default slot.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db, slot: Slot}
}

// Save overwrites the slot with the serialized snapshot.
func (r *SnapshotRepository) Save(ctx context.Context, snapshot *secondary.SnapshotRecord) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (slot, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		r.slot, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads the slot back. Returns (nil, nil) when no snapshot exists.
// Collections that are missing or malformed decode as empty rather than
// failing the whole load.
func (r *SnapshotRepository) Load(ctx context.Context) (*secondary.SnapshotRecord, error) {
	var data string
	err := r.db.QueryRowContext(ctx, "SELECT data FROM snapshots WHERE slot = ?", r.slot).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return decodeSnapshot([]byte(data))
}

// envelope defers collection decoding so a malformed array can be coerced
// to empty instead of rejecting the snapshot.
type envelope struct {
	UserProfile          secondary.ProfileRecord `json:"userProfile"`
	NotificationsEnabled bool                    `json:"notificationsEnabled"`
	Hospitals            json.RawMessage         `json:"hospitals"`
	Shifts               json.RawMessage         `json:"shifts"`
}

func decodeSnapshot(data []byte) (*secondary.SnapshotRecord, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	rec := &secondary.SnapshotRecord{
		UserProfile:          env.UserProfile,
		NotificationsEnabled: env.NotificationsEnabled,
		Hospitals:            []secondary.HospitalRecord{},
		Shifts:               []secondary.ShiftRecord{},
	}
	if len(env.Hospitals) > 0 {
		var hospitals []secondary.HospitalRecord
		if err := json.Unmarshal(env.Hospitals, &hospitals); err == nil && hospitals != nil {
			rec.Hospitals = hospitals
		}
	}
	if len(env.Shifts) > 0 {
		var shifts []secondary.ShiftRecord
		if err := json.Unmarshal(env.Shifts, &shifts); err == nil && shifts != nil {
			rec.Shifts = shifts
		}
	}
	return rec, nil
}

// Ensure SnapshotRepository implements the interface
var _ secondary.SnapshotStore = (*SnapshotRepository)(nil)
