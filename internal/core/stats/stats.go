// Package stats contains pure aggregation over the hospital and shift
// collections for dashboard-style summaries.
package stats

import (
	"sort"
	"time"

	"github.com/example/shiftledger/internal/models"
)

// HospitalIncome is one hospital's slice of a monthly summary.
type HospitalIncome struct {
	HospitalID   string
	HospitalName string
	Color        string
	Income       float64
	Shifts       int
}

// Monthly summarizes one calendar month of logged shifts.
type Monthly struct {
	TotalShifts   int
	TotalPatients int
	TotalIncome   float64
	ByHospital    []HospitalIncome
}

// ComputeMonthly aggregates all shifts falling in the given year and month.
// Shifts referencing a hospital that no longer exists still count toward the
// totals but are grouped under an empty hospital name.
func ComputeMonthly(hospitals []models.Hospital, shifts []models.Shift, year int, month time.Month) Monthly {
	byID := make(map[string]*models.Hospital, len(hospitals))
	for i := range hospitals {
		byID[hospitals[i].ID] = &hospitals[i]
	}

	var m Monthly
	grouped := make(map[string]*HospitalIncome)
	for _, s := range shifts {
		if s.Date.Year() != year || s.Date.Month() != month {
			continue
		}
		m.TotalShifts++
		m.TotalPatients += s.CasesCount
		m.TotalIncome += s.TotalEarnings

		entry, ok := grouped[s.HospitalID]
		if !ok {
			entry = &HospitalIncome{HospitalID: s.HospitalID}
			if h, found := byID[s.HospitalID]; found {
				entry.HospitalName = h.Name
				entry.Color = h.Color
			}
			grouped[s.HospitalID] = entry
		}
		entry.Income += s.TotalEarnings
		entry.Shifts++
	}

	m.ByHospital = make([]HospitalIncome, 0, len(grouped))
	for _, entry := range grouped {
		m.ByHospital = append(m.ByHospital, *entry)
	}
	sort.Slice(m.ByHospital, func(i, j int) bool {
		if m.ByHospital[i].Income != m.ByHospital[j].Income {
			return m.ByHospital[i].Income > m.ByHospital[j].Income
		}
		return m.ByHospital[i].HospitalID < m.ByHospital[j].HospitalID
	})
	return m
}
