package models

import "time"

// Shift represents one worked period logged against exactly one hospital.
//
// TotalEarnings is a snapshot computed at write time from the hospital's
// rates; it is not recomputed when the hospital's configuration changes
// later.
type Shift struct {
	ID                 string
	HospitalID         string
	Date               time.Time
	StartTime          string // wall clock "HH:MM"
	EndTime            string // wall clock "HH:MM"; may be before StartTime for overnight shifts
	CasesCount         int
	ProceduresCount    int
	IncludesOutpatient bool
	Notes              string
	CustomRate         float64 // positive values override the computed earnings
	ItemCounts         map[string]int
	TotalEarnings      float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
