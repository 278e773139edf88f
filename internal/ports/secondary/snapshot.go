// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// SnapshotStore defines the secondary port for the durable on-device
// snapshot slot. Implementations never touch the network.
type SnapshotStore interface {
	// Save overwrites the snapshot slot with the given state.
	Save(ctx context.Context, snapshot *SnapshotRecord) error

	// Load reads the snapshot slot. A nil record with a nil error means no
	// snapshot has been written yet.
	Load(ctx context.Context) (*SnapshotRecord, error)
}

// SnapshotRecord is the persisted shape of the ledger state. Every
// timestamp-bearing field is an ISO-8601 string; native time values are
// never written to the slot.
type SnapshotRecord struct {
	UserProfile          ProfileRecord    `json:"userProfile"`
	NotificationsEnabled bool             `json:"notificationsEnabled"`
	Hospitals            []HospitalRecord `json:"hospitals"`
	Shifts               []ShiftRecord    `json:"shifts"`
}

// ProfileRecord is the persisted shape of the user profile.
type ProfileRecord struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
}

// ItemRateRecord is the persisted shape of one billable line item.
type ItemRateRecord struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// HospitalRecord is the persisted shape of a hospital.
type HospitalRecord struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	PaymentModel   string           `json:"paymentModel"`
	FixedRate      float64          `json:"fixedRate"`
	PerPatientRate float64          `json:"perPatientRate"`
	FixedSalary    float64          `json:"fixedSalary,omitempty"`
	ItemRates      []ItemRateRecord `json:"itemRates,omitempty"`
	Color          string           `json:"color"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
}

// ShiftRecord is the persisted shape of a shift.
type ShiftRecord struct {
	ID                 string         `json:"id"`
	HospitalID         string         `json:"hospitalId"`
	Date               string         `json:"date"`
	StartTime          string         `json:"startTime"`
	EndTime            string         `json:"endTime"`
	CasesCount         int            `json:"casesCount"`
	ProceduresCount    int            `json:"proceduresCount"`
	IncludesOutpatient bool           `json:"includesOutpatient"`
	Notes              string         `json:"notes,omitempty"`
	CustomRate         float64        `json:"customRate,omitempty"`
	ItemCounts         map[string]int `json:"itemCounts,omitempty"`
	TotalEarnings      float64        `json:"totalEarnings"`
	CreatedAt          string         `json:"createdAt"`
	UpdatedAt          string         `json:"updatedAt"`
}

// BackupFile is the external backup/restore format: the snapshot shape plus
// versioning metadata. The pointer and slice fields double as the presence
// markers checked before an import is applied.
type BackupFile struct {
	Version              string           `json:"version"`
	ExportDate           string           `json:"exportDate"`
	UserProfile          *ProfileRecord   `json:"userProfile"`
	NotificationsEnabled bool             `json:"notificationsEnabled"`
	Hospitals            []HospitalRecord `json:"hospitals"`
	Shifts               []ShiftRecord    `json:"shifts"`
}
