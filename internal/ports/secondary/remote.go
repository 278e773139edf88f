package secondary

import "context"

// RemoteStore defines the secondary port for the remote relational copy of
// the ledger, keyed by user identity. Upserts are idempotent by entity id.
type RemoteStore interface {
	// UpsertHospital inserts or updates one hospital row.
	UpsertHospital(ctx context.Context, userID string, rec *RemoteHospitalRecord) error

	// DeleteHospital removes one hospital row. Cascading shift removal is
	// the remote schema's responsibility.
	DeleteHospital(ctx context.Context, userID, id string) error

	// SelectHospitals retrieves all hospital rows for the user.
	SelectHospitals(ctx context.Context, userID string) ([]*RemoteHospitalRecord, error)

	// UpsertShift inserts or updates one shift row.
	UpsertShift(ctx context.Context, userID string, rec *RemoteShiftRecord) error

	// DeleteShift removes one shift row.
	DeleteShift(ctx context.Context, userID, id string) error

	// SelectShifts retrieves all shift rows for the user.
	SelectShifts(ctx context.Context, userID string) ([]*RemoteShiftRecord, error)

	// UpsertProfile inserts or updates the user's profile row.
	UpsertProfile(ctx context.Context, userID string, rec *RemoteProfileRecord) error

	// SelectProfile retrieves the user's profile row. A nil record with a
	// nil error means no profile has been stored remotely.
	SelectProfile(ctx context.Context, userID string) (*RemoteProfileRecord, error)
}

// RemoteHospitalRecord is a hospital as stored remotely. Timestamps are
// RFC 3339 strings; the adapter owns the column-level representation.
type RemoteHospitalRecord struct {
	ID             string
	Name           string
	PaymentModel   string
	FixedRate      float64
	PerPatientRate float64
	FixedSalary    float64
	ItemRates      []ItemRateRecord
	Color          string
	CreatedAt      string
	UpdatedAt      string
}

// RemoteShiftRecord is a shift as stored remotely.
type RemoteShiftRecord struct {
	ID                 string
	HospitalID         string
	Date               string
	StartTime          string
	EndTime            string
	CasesCount         int
	ProceduresCount    int
	IncludesOutpatient bool
	Notes              string
	CustomRate         float64
	ItemCounts         map[string]int
	TotalEarnings      float64
	CreatedAt          string
	UpdatedAt          string
}

// RemoteProfileRecord is the user profile as stored remotely.
type RemoteProfileRecord struct {
	Name   string
	Title  string
	Email  string
	Gender string
}
