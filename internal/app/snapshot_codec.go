package app

import (
	"time"

	"github.com/example/shiftledger/internal/models"
	"github.com/example/shiftledger/internal/ports/secondary"
)

// timeLayout keeps the snapshot round trip lossless to sub-second
// precision; plain RFC 3339 would truncate milliseconds.
const timeLayout = time.RFC3339Nano

func stateToRecord(profile models.UserProfile, notificationsEnabled bool, hospitals []models.Hospital, shifts []models.Shift) *secondary.SnapshotRecord {
	rec := &secondary.SnapshotRecord{
		UserProfile: secondary.ProfileRecord{
			Name:   profile.Name,
			Title:  profile.Title,
			Email:  profile.Email,
			Gender: profile.Gender,
		},
		NotificationsEnabled: notificationsEnabled,
		Hospitals:            make([]secondary.HospitalRecord, 0, len(hospitals)),
		Shifts:               make([]secondary.ShiftRecord, 0, len(shifts)),
	}
	for i := range hospitals {
		rec.Hospitals = append(rec.Hospitals, hospitalToRecord(&hospitals[i]))
	}
	for i := range shifts {
		rec.Shifts = append(rec.Shifts, shiftToRecord(&shifts[i]))
	}
	return rec
}

func recordToState(rec *secondary.SnapshotRecord, now time.Time) (models.UserProfile, bool, []models.Hospital, []models.Shift) {
	profile := models.UserProfile{
		Name:   rec.UserProfile.Name,
		Title:  rec.UserProfile.Title,
		Email:  rec.UserProfile.Email,
		Gender: rec.UserProfile.Gender,
	}
	hospitals := make([]models.Hospital, 0, len(rec.Hospitals))
	for i := range rec.Hospitals {
		hospitals = append(hospitals, recordToHospital(&rec.Hospitals[i], now))
	}
	shifts := make([]models.Shift, 0, len(rec.Shifts))
	for i := range rec.Shifts {
		shifts = append(shifts, recordToShift(&rec.Shifts[i], now))
	}
	return profile, rec.NotificationsEnabled, hospitals, shifts
}

func hospitalToRecord(h *models.Hospital) secondary.HospitalRecord {
	return secondary.HospitalRecord{
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

func recordToHospital(rec *secondary.HospitalRecord, now time.Time) models.Hospital {
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

func shiftToRecord(sh *models.Shift) secondary.ShiftRecord {
	return secondary.ShiftRecord{
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

func recordToShift(rec *secondary.ShiftRecord, now time.Time) models.Shift {
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

func itemRatesToRecords(items []models.ItemRate) []secondary.ItemRateRecord {
	if items == nil {
		return nil
	}
	out := make([]secondary.ItemRateRecord, 0, len(items))
	for _, it := range items {
		out = append(out, secondary.ItemRateRecord{ID: it.ID, Name: it.Name, Rate: it.Rate})
	}
	return out
}

func recordsToItemRates(recs []secondary.ItemRateRecord) []models.ItemRate {
	if recs == nil {
		return nil
	}
	out := make([]models.ItemRate, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.ItemRate{ID: r.ID, Name: r.Name, Rate: r.Rate})
	}
	return out
}

// parseTimeOr decodes an ISO-8601 timestamp, defaulting to fallback when
// the field is absent or unreadable (legacy snapshots carried no
// createdAt/updatedAt).
func parseTimeOr(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return fallback
	}
	return t
}
