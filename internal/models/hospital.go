// Package models contains domain types for shiftledger entities.
// Persistence is handled by the repository interfaces in ports/secondary.
package models

import "time"

// PaymentModel governs how a shift's earnings are computed for a hospital.
type PaymentModel string

// Payment model constants
const (
	PaymentFixed      PaymentModel = "fixed"       // flat amount per shift
	PaymentPerPatient PaymentModel = "per_patient" // amount per case
	PaymentMixed      PaymentModel = "mixed"       // flat amount plus amount per case
	PaymentDetailed   PaymentModel = "detailed"    // base salary plus billed line items
)

// ItemRate is a named billable service line with a per-unit rate.
// Only hospitals using the detailed payment model carry item rates.
type ItemRate struct {
	ID   string
	Name string
	Rate float64
}

// Hospital represents an employer entity with a payment configuration.
type Hospital struct {
	ID             string
	Name           string
	PaymentModel   PaymentModel
	FixedRate      float64
	PerPatientRate float64
	FixedSalary    float64 // detailed model only; zero when unset
	ItemRates      []ItemRate
	Color          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HospitalColors is the cyclic palette assigned to hospitals created
// without an explicit color, indexed by current collection size.
var HospitalColors = []string{
	"#3b82f6", // blue
	"#10b981", // emerald
	"#f59e0b", // amber
	"#8b5cf6", // violet
	"#ec4899", // pink
	"#06b6d4", // cyan
	"#f97316", // orange
	"#6366f1", // indigo
}
