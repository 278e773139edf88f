package primary

import "context"

// SyncService is the primary port over the remote reconciliation engine.
// All three operations are awaitable and idempotent. They may be invoked
// concurrently by independent triggers; no mutual exclusion is imposed, so
// a later fetch's wholesale replace simply wins over an earlier one still
// in flight.
type SyncService interface {
	// FullSync pushes the entire local state (profile, hospitals, shifts)
	// to the remote store, upserting by id.
	FullSync(ctx context.Context) error

	// FullFetch pulls the remote state and wholesale-replaces the local
	// collections. An empty remote collection is treated as nothing to
	// apply, never as an instruction to clear local data.
	FullFetch(ctx context.Context) error

	// Reconcile runs the login-time policy: push first when local state is
	// non-empty (so offline work is not lost), then fetch the authoritative
	// remote state. Conflicting edits resolve as last-fetch-wins; there is
	// no field-level conflict detection.
	Reconcile(ctx context.Context) error
}
