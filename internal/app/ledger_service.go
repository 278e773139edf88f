// Package app contains the application services implementing the primary
// ports: the ledger (domain store) and the remote reconciliation engine.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/shiftledger/internal/core/earnings"
	"github.com/example/shiftledger/internal/core/reminder"
	"github.com/example/shiftledger/internal/models"
	"github.com/example/shiftledger/internal/ports/primary"
	"github.com/example/shiftledger/internal/ports/secondary"
)

// RemotePusher receives fire-and-forget notifications after each local
// mutation. Implementations must swallow remote failures: a failed push is
// logged and lost until the next full sync, never surfaced to the mutator's
// caller.
type RemotePusher interface {
	HospitalUpserted(ctx context.Context, hospital models.Hospital)
	HospitalDeleted(ctx context.Context, id string)
	ShiftUpserted(ctx context.Context, shift models.Shift)
	ShiftDeleted(ctx context.Context, id string)
	ProfileUpdated(ctx context.Context, profile models.UserProfile)
}

// LedgerServiceImpl is the single authoritative in-memory holder of the
// hospital and shift collections. A mutex serializes mutators so every
// mutation is atomic from the caller's perspective; the snapshot slot is
// rewritten synchronously inside each mutation, while the matching remote
// push runs on its own goroutine and is never awaited.
type LedgerServiceImpl struct {
	mu                   sync.Mutex
	profile              models.UserProfile
	notificationsEnabled bool
	hospitals            []models.Hospital
	shifts               []models.Shift

	snapshots secondary.SnapshotStore
	notifier  secondary.Notifier
	pusher    RemotePusher
	log       zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewLedgerService creates a ledger service with injected dependencies.
// Attach the remote pusher afterwards with SetPusher; without one the
// ledger operates local-only.
func NewLedgerService(snapshots secondary.SnapshotStore, notifier secondary.Notifier, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		snapshots: snapshots,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// SetPusher attaches the remote pusher. Split from the constructor because
// the sync service and the ledger reference each other.
func (s *LedgerServiceImpl) SetPusher(p RemotePusher) {
	s.pusher = p
}

// Load restores state from the snapshot slot. A missing snapshot leaves the
// ledger with empty collections and a default profile.
func (s *LedgerServiceImpl) Load(ctx context.Context) error {
	rec, err := s.snapshots.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec == nil {
		s.hospitals = []models.Hospital{}
		s.shifts = []models.Shift{}
		return nil
	}
	profile, enabled, hospitals, shifts := recordToState(rec, s.now())
	s.profile = profile
	s.notificationsEnabled = enabled
	s.hospitals = hospitals
	s.shifts = shifts
	return nil
}

// AddHospital creates a hospital, assigning id, timestamps, and a palette
// color when none was supplied.
func (s *LedgerServiceImpl) AddHospital(ctx context.Context, req primary.AddHospitalRequest) (*models.Hospital, error) {
	s.mu.Lock()
	now := s.now()
	h := models.Hospital{
		ID:             s.newID(),
		Name:           req.Name,
		PaymentModel:   req.PaymentModel,
		FixedRate:      req.FixedRate,
		PerPatientRate: req.PerPatientRate,
		FixedSalary:    req.FixedSalary,
		ItemRates:      req.ItemRates,
		Color:          req.Color,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if h.Color == "" {
		h.Color = models.HospitalColors[len(s.hospitals)%len(models.HospitalColors)]
	}
	s.hospitals = append(s.hospitals, h)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.firePush(func(pctx context.Context) { s.pusher.HospitalUpserted(pctx, h) })
	return &h, nil
}

// UpdateHospital merges a partial update into the matching hospital.
// Unknown ids are a no-op, not an error.
func (s *LedgerServiceImpl) UpdateHospital(ctx context.Context, id string, req primary.UpdateHospitalRequest) error {
	s.mu.Lock()
	idx := s.hospitalIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	h := &s.hospitals[idx]
	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.PaymentModel != nil {
		h.PaymentModel = *req.PaymentModel
	}
	if req.FixedRate != nil {
		h.FixedRate = *req.FixedRate
	}
	if req.PerPatientRate != nil {
		h.PerPatientRate = *req.PerPatientRate
	}
	if req.FixedSalary != nil {
		h.FixedSalary = *req.FixedSalary
	}
	if req.ItemRates != nil {
		h.ItemRates = *req.ItemRates
	}
	if req.Color != nil {
		h.Color = *req.Color
	}
	h.UpdatedAt = s.now()
	updated := *h
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.firePush(func(pctx context.Context) { s.pusher.HospitalUpserted(pctx, updated) })
	return nil
}

// DeleteHospital removes a hospital and every shift referencing it, so no
// orphaned shifts remain. Remote-side cascade is the remote schema's job;
// only the hospital delete is pushed.
func (s *LedgerServiceImpl) DeleteHospital(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.hospitalIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.hospitals = append(s.hospitals[:idx], s.hospitals[idx+1:]...)

	var removed []string
	kept := s.shifts[:0]
	for _, sh := range s.shifts {
		if sh.HospitalID == id {
			removed = append(removed, sh.ID)
			continue
		}
		kept = append(kept, sh)
	}
	s.shifts = kept
	s.persistLocked(ctx)
	s.mu.Unlock()

	for _, shiftID := range removed {
		s.cancelReminders(ctx, shiftID)
	}
	s.firePush(func(pctx context.Context) { s.pusher.HospitalDeleted(pctx, id) })
	return nil
}

// AddShift logs a shift. Earnings are computed from the current state of
// the referenced hospital; an unknown hospital id yields zero earnings
// rather than an error.
func (s *LedgerServiceImpl) AddShift(ctx context.Context, req primary.AddShiftRequest) (*models.Shift, error) {
	s.mu.Lock()
	now := s.now()
	sh := models.Shift{
		ID:                 s.newID(),
		HospitalID:         req.HospitalID,
		Date:               req.Date,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		CasesCount:         req.CasesCount,
		ProceduresCount:    req.ProceduresCount,
		IncludesOutpatient: req.IncludesOutpatient,
		Notes:              req.Notes,
		CustomRate:         req.CustomRate,
		ItemCounts:         req.ItemCounts,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	sh.TotalEarnings = earnings.Compute(s.hospitalLocked(req.HospitalID), sh.CasesCount, sh.CustomRate, sh.ItemCounts)
	s.shifts = append(s.shifts, sh)
	hospitalName := s.hospitalNameLocked(sh.HospitalID)
	remindersOn := s.notificationsEnabled
	s.persistLocked(ctx)
	s.mu.Unlock()

	if remindersOn {
		s.scheduleReminders(ctx, sh, hospitalName)
	}
	s.firePush(func(pctx context.Context) { s.pusher.ShiftUpserted(pctx, sh) })
	return &sh, nil
}

// UpdateShift merges a partial update. Earnings are recomputed only when a
// rate-affecting field (hospital, case count, custom rate, item counts) is
// part of the update; editing notes or the date alone leaves them intact.
func (s *LedgerServiceImpl) UpdateShift(ctx context.Context, id string, req primary.UpdateShiftRequest) error {
	s.mu.Lock()
	idx := s.shiftIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	sh := &s.shifts[idx]
	if req.HospitalID != nil {
		sh.HospitalID = *req.HospitalID
	}
	if req.Date != nil {
		sh.Date = *req.Date
	}
	if req.StartTime != nil {
		sh.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		sh.EndTime = *req.EndTime
	}
	if req.CasesCount != nil {
		sh.CasesCount = *req.CasesCount
	}
	if req.ProceduresCount != nil {
		sh.ProceduresCount = *req.ProceduresCount
	}
	if req.IncludesOutpatient != nil {
		sh.IncludesOutpatient = *req.IncludesOutpatient
	}
	if req.Notes != nil {
		sh.Notes = *req.Notes
	}
	if req.CustomRate != nil {
		sh.CustomRate = *req.CustomRate
	}
	if req.ItemCounts != nil {
		sh.ItemCounts = *req.ItemCounts
	}
	if req.HospitalID != nil || req.CasesCount != nil || req.CustomRate != nil || req.ItemCounts != nil {
		sh.TotalEarnings = earnings.Compute(s.hospitalLocked(sh.HospitalID), sh.CasesCount, sh.CustomRate, sh.ItemCounts)
	}
	sh.UpdatedAt = s.now()
	updated := *sh
	hospitalName := s.hospitalNameLocked(updated.HospitalID)
	remindersOn := s.notificationsEnabled
	s.persistLocked(ctx)
	s.mu.Unlock()

	if remindersOn {
		s.cancelReminders(ctx, id)
		s.scheduleReminders(ctx, updated, hospitalName)
	}
	s.firePush(func(pctx context.Context) { s.pusher.ShiftUpserted(pctx, updated) })
	return nil
}

// DeleteShift removes a shift and cancels its reminders.
func (s *LedgerServiceImpl) DeleteShift(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.shiftIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.shifts = append(s.shifts[:idx], s.shifts[idx+1:]...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.cancelReminders(ctx, id)
	s.firePush(func(pctx context.Context) { s.pusher.ShiftDeleted(pctx, id) })
	return nil
}

// Hospitals returns a copy of the hospital collection. Order is incidental
// and not a contract; callers sort for display.
func (s *LedgerServiceImpl) Hospitals(ctx context.Context) []models.Hospital {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Hospital, len(s.hospitals))
	copy(out, s.hospitals)
	return out
}

// Hospital returns one hospital by id, or nil if not found.
func (s *LedgerServiceImpl) Hospital(ctx context.Context, id string) *models.Hospital {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h := s.hospitalLocked(id); h != nil {
		out := *h
		return &out
	}
	return nil
}

// Shifts returns a copy of the shift collection.
func (s *LedgerServiceImpl) Shifts(ctx context.Context) []models.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Shift, len(s.shifts))
	copy(out, s.shifts)
	return out
}

// Profile returns the stored user profile.
func (s *LedgerServiceImpl) Profile(ctx context.Context) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetProfile replaces the stored user profile.
func (s *LedgerServiceImpl) SetProfile(ctx context.Context, profile models.UserProfile) error {
	s.mu.Lock()
	s.profile = profile
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.firePush(func(pctx context.Context) { s.pusher.ProfileUpdated(pctx, profile) })
	return nil
}

// NotificationsEnabled reports the stored reminder preference.
func (s *LedgerServiceImpl) NotificationsEnabled(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notificationsEnabled
}

// SetNotificationsEnabled flips the reminder preference. The preference
// only becomes true if the notifier actually granted permission.
func (s *LedgerServiceImpl) SetNotificationsEnabled(ctx context.Context, enabled bool) (bool, error) {
	if enabled {
		granted, err := s.notifier.RequestPermission(ctx)
		if err != nil {
			return false, err
		}
		enabled = granted
	}

	s.mu.Lock()
	s.notificationsEnabled = enabled
	s.persistLocked(ctx)
	s.mu.Unlock()
	return enabled, nil
}

// Import wholesale-replaces local state with an externally validated
// snapshot. No merging, no remote push; this is a trusted destructive
// overwrite of local state only.
func (s *LedgerServiceImpl) Import(ctx context.Context, req primary.ImportRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = req.Profile
	s.notificationsEnabled = req.NotificationsEnabled
	s.hospitals = req.Hospitals
	if s.hospitals == nil {
		s.hospitals = []models.Hospital{}
	}
	s.shifts = req.Shifts
	if s.shifts == nil {
		s.shifts = []models.Shift{}
	}
	s.persistLocked(ctx)
	return nil
}

// Export captures the current state for backup serialization.
func (s *LedgerServiceImpl) Export(ctx context.Context) (*primary.ExportData, error) {
	state := s.exportState()
	return &state, nil
}

// exportState copies the full serializable state under the lock.
func (s *LedgerServiceImpl) exportState() primary.ExportData {
	s.mu.Lock()
	defer s.mu.Unlock()
	hospitals := make([]models.Hospital, len(s.hospitals))
	copy(hospitals, s.hospitals)
	shifts := make([]models.Shift, len(s.shifts))
	copy(shifts, s.shifts)
	return primary.ExportData{
		Profile:              s.profile,
		NotificationsEnabled: s.notificationsEnabled,
		Hospitals:            hospitals,
		Shifts:               shifts,
	}
}

// hasLocalData reports whether any local-only state exists worth pushing
// before a pull adopts the remote copy.
func (s *LedgerServiceImpl) hasLocalData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hospitals) > 0 || len(s.shifts) > 0
}

// applyRemote installs fetched remote state. Each collection is replaced
// only when the fetch returned something for it: an empty remote result is
// "nothing to apply", never an instruction to clear local data, which
// protects local state from a transient empty read.
func (s *LedgerServiceImpl) applyRemote(ctx context.Context, profile *models.UserProfile, hospitals []models.Hospital, shifts []models.Shift) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile != nil {
		s.profile = *profile
	}
	if len(hospitals) > 0 {
		s.hospitals = hospitals
	} else {
		s.log.Debug().Msg("fetch returned no hospitals; keeping local collection")
	}
	if len(shifts) > 0 {
		s.shifts = shifts
	} else {
		s.log.Debug().Msg("fetch returned no shifts; keeping local collection")
	}
	s.persistLocked(ctx)
}

// persistLocked rewrites the snapshot slot from current state. Write
// failures are logged and swallowed: the in-memory state stays
// authoritative and the mutation is not rolled back.
func (s *LedgerServiceImpl) persistLocked(ctx context.Context) {
	rec := stateToRecord(s.profile, s.notificationsEnabled, s.hospitals, s.shifts)
	if err := s.snapshots.Save(ctx, rec); err != nil {
		s.log.Error().Err(err).Msg("failed to write local snapshot")
	}
}

// firePush kicks off a remote push without awaiting it. Pushes carry a
// fresh background context: navigating away never cancels one in flight.
func (s *LedgerServiceImpl) firePush(fn func(context.Context)) {
	if s.pusher == nil {
		return
	}
	go fn(context.Background())
}

// scheduleReminders derives and requests the two shift notifications.
// Notifier failures are logged, never propagated.
func (s *LedgerServiceImpl) scheduleReminders(ctx context.Context, sh models.Shift, hospitalName string) {
	for _, r := range reminder.Derive(sh.ID, sh.Date, sh.StartTime, sh.EndTime, hospitalName, s.now()) {
		if err := s.notifier.Schedule(ctx, r.ID, r.FireAt, r.Title, r.Body); err != nil {
			s.log.Warn().Err(err).Str("shift_id", sh.ID).Str("kind", string(r.Kind)).Msg("failed to schedule reminder")
		}
	}
}

// cancelReminders cancels both reminders addressed to a shift.
func (s *LedgerServiceImpl) cancelReminders(ctx context.Context, shiftID string) {
	if err := s.notifier.Cancel(ctx, reminder.IDs(shiftID)); err != nil {
		s.log.Warn().Err(err).Str("shift_id", shiftID).Msg("failed to cancel reminders")
	}
}

func (s *LedgerServiceImpl) hospitalIndexLocked(id string) int {
	for i := range s.hospitals {
		if s.hospitals[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *LedgerServiceImpl) hospitalLocked(id string) *models.Hospital {
	if idx := s.hospitalIndexLocked(id); idx >= 0 {
		return &s.hospitals[idx]
	}
	return nil
}

func (s *LedgerServiceImpl) hospitalNameLocked(id string) string {
	if h := s.hospitalLocked(id); h != nil {
		return h.Name
	}
	return ""
}

func (s *LedgerServiceImpl) shiftIndexLocked(id string) int {
	for i := range s.shifts {
		if s.shifts[i].ID == id {
			return i
		}
	}
	return -1
}

// Ensure LedgerServiceImpl implements the interface
var _ primary.LedgerService = (*LedgerServiceImpl)(nil)
