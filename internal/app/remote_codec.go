package app

import (
	"time"

	"github.com/example/shiftledger/internal/models"
	"github.com/example/shiftledger/internal/ports/secondary"
)

// Translation between the camel-case domain schema and the snake_case
// remote schema happens at this boundary: the records below are the typed
// wire shape, and the adapters own the column names.

func hospitalToRemote(h *models.Hospital) *secondary.RemoteHospitalRecord {
	return &secondary.RemoteHospitalRecord{
		ID:             h.ID,
		Name:           h.Name,
		PaymentModel:   string(h.PaymentModel),
		FixedRate:      h.FixedRate,
		PerPatientRate: h.PerPatientRate,
		FixedSalary:    h.FixedSalary,
		ItemRates:      itemRatesToRecords(h.ItemRates),
		Color:          h.Color,
		CreatedAt:      h.CreatedAt.Format(timeLayout),
		UpdatedAt:      h.UpdatedAt.Format(timeLayout),
	}
}

func remoteToHospital(rec *secondary.RemoteHospitalRecord, now time.Time) models.Hospital {
	return models.Hospital{
		ID:             rec.ID,
		Name:           rec.Name,
		PaymentModel:   models.PaymentModel(rec.PaymentModel),
		FixedRate:      rec.FixedRate,
		PerPatientRate: rec.PerPatientRate,
		FixedSalary:    rec.FixedSalary,
		ItemRates:      recordsToItemRates(rec.ItemRates),
		Color:          rec.Color,
		CreatedAt:      parseTimeOr(rec.CreatedAt, now),
		UpdatedAt:      parseTimeOr(rec.UpdatedAt, now),
	}
}

func shiftToRemote(sh *models.Shift) *secondary.RemoteShiftRecord {
	return &secondary.RemoteShiftRecord{
		ID:                 sh.ID,
		HospitalID:         sh.HospitalID,
		Date:               sh.Date.Format(timeLayout),
		StartTime:          sh.StartTime,
		EndTime:            sh.EndTime,
		CasesCount:         sh.CasesCount,
		ProceduresCount:    sh.ProceduresCount,
		IncludesOutpatient: sh.IncludesOutpatient,
		Notes:              sh.Notes,
		CustomRate:         sh.CustomRate,
		ItemCounts:         sh.ItemCounts,
		TotalEarnings:      sh.TotalEarnings,
		CreatedAt:          sh.CreatedAt.Format(timeLayout),
		UpdatedAt:          sh.UpdatedAt.Format(timeLayout),
	}
}

func remoteToShift(rec *secondary.RemoteShiftRecord, now time.Time) models.Shift {
	return models.Shift{
		ID:                 rec.ID,
		HospitalID:         rec.HospitalID,
		Date:               parseTimeOr(rec.Date, now),
		StartTime:          rec.StartTime,
		EndTime:            rec.EndTime,
		CasesCount:         rec.CasesCount,
		ProceduresCount:    rec.ProceduresCount,
		IncludesOutpatient: rec.IncludesOutpatient,
		Notes:              rec.Notes,
		CustomRate:         rec.CustomRate,
		ItemCounts:         rec.ItemCounts,
		TotalEarnings:      rec.TotalEarnings,
		CreatedAt:          parseTimeOr(rec.CreatedAt, now),
		UpdatedAt:          parseTimeOr(rec.UpdatedAt, now),
	}
}

func profileToRemote(p models.UserProfile) *secondary.RemoteProfileRecord {
	return &secondary.RemoteProfileRecord{Name: p.Name, Title: p.Title, Email: p.Email, Gender: p.Gender}
}

func remoteToProfile(rec *secondary.RemoteProfileRecord) models.UserProfile {
	return models.UserProfile{Name: rec.Name, Title: rec.Title, Email: rec.Email, Gender: rec.Gender}
}
