// Package primary defines the primary ports (driving interfaces) for the
// application. UI collaborators such as the CLI call the application through
// these interfaces with already-coerced primitive inputs.
package primary

import (
	"context"
	"time"

	"github.com/example/shiftledger/internal/models"
)

// AddHospitalRequest carries the fields for creating a hospital. ID, color
// (when empty) and timestamps are assigned by the service.
type AddHospitalRequest struct {
	Name           string
	PaymentModel   models.PaymentModel
	FixedRate      float64
	PerPatientRate float64
	FixedSalary    float64
	ItemRates      []models.ItemRate
	Color          string
}

// UpdateHospitalRequest carries a partial hospital update. Nil fields are
// left untouched.
type UpdateHospitalRequest struct {
	Name           *string
	PaymentModel   *models.PaymentModel
	FixedRate      *float64
	PerPatientRate *float64
	FixedSalary    *float64
	ItemRates      *[]models.ItemRate
	Color          *string
}

// AddShiftRequest carries the fields for logging a shift. TotalEarnings is
// always computed by the service, never supplied.
type AddShiftRequest struct {
	HospitalID         string
	Date               time.Time
	StartTime          string
	EndTime            string
	CasesCount         int
	ProceduresCount    int
	IncludesOutpatient bool
	Notes              string
	CustomRate         float64
	ItemCounts         map[string]int
}

// UpdateShiftRequest carries a partial shift update. Nil fields are left
// untouched. Earnings are recomputed only when a rate-affecting field
// (HospitalID, CasesCount, CustomRate, ItemCounts) is part of the update.
type UpdateShiftRequest struct {
	HospitalID         *string
	Date               *time.Time
	StartTime          *string
	EndTime            *string
	CasesCount         *int
	ProceduresCount    *int
	IncludesOutpatient *bool
	Notes              *string
	CustomRate         *float64
	ItemCounts         *map[string]int
}

// ImportRequest is the trusted wholesale replacement applied on restore.
// It overwrites local state only; nothing is pushed to the remote store.
type ImportRequest struct {
	Profile              models.UserProfile
	NotificationsEnabled bool
	Hospitals            []models.Hospital
	Shifts               []models.Shift
}

// LedgerService is the primary port over the hospital and shift collections.
// Mutations are atomic from the caller's perspective: in-memory state
// reflects the full effect before the call returns. The matching remote push
// is fired but not awaited; callers needing remote confirmation use
// SyncService instead.
type LedgerService interface {
	// Load restores the ledger from the local snapshot slot. Call once at
	// startup; a missing snapshot initializes empty collections.
	Load(ctx context.Context) error

	// AddHospital creates a hospital and returns it.
	AddHospital(ctx context.Context, req AddHospitalRequest) (*models.Hospital, error)

	// UpdateHospital merges a partial update. Unknown ids are a no-op.
	UpdateHospital(ctx context.Context, id string, req UpdateHospitalRequest) error

	// DeleteHospital removes a hospital and cascades to its shifts.
	DeleteHospital(ctx context.Context, id string) error

	// AddShift logs a shift, computing earnings from the current state of
	// the referenced hospital.
	AddShift(ctx context.Context, req AddShiftRequest) (*models.Shift, error)

	// UpdateShift merges a partial update. Unknown ids are a no-op.
	UpdateShift(ctx context.Context, id string, req UpdateShiftRequest) error

	// DeleteShift removes a shift and cancels its reminders.
	DeleteShift(ctx context.Context, id string) error

	// Hospitals returns a copy of the hospital collection.
	Hospitals(ctx context.Context) []models.Hospital

	// Hospital returns one hospital, or nil if the id is unknown.
	Hospital(ctx context.Context, id string) *models.Hospital

	// Shifts returns a copy of the shift collection.
	Shifts(ctx context.Context) []models.Shift

	// Profile returns the stored user profile.
	Profile(ctx context.Context) models.UserProfile

	// SetProfile replaces the stored user profile.
	SetProfile(ctx context.Context, profile models.UserProfile) error

	// NotificationsEnabled reports the stored notification preference.
	NotificationsEnabled(ctx context.Context) bool

	// SetNotificationsEnabled flips the reminder preference. Enabling asks
	// the notifier for permission first and reports whether the preference
	// is now true.
	SetNotificationsEnabled(ctx context.Context, enabled bool) (bool, error)

	// Import wholesale-replaces local state from a restore file.
	Import(ctx context.Context, req ImportRequest) error

	// Export captures the current state as a backup file.
	Export(ctx context.Context) (*ExportData, error)
}

// ExportData is the state handed back for backup serialization.
type ExportData struct {
	Profile              models.UserProfile
	NotificationsEnabled bool
	Hospitals            []models.Hospital
	Shifts               []models.Shift
}
