package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/example/shiftledger/internal/models"
	"github.com/example/shiftledger/internal/ports/primary"
	"github.com/example/shiftledger/internal/ports/secondary"
)

// SyncServiceImpl mirrors local state to the remote store, best effort.
// It doubles as the ledger's RemotePusher for per-mutation pushes.
//
// FullSync and FullFetch may run concurrently when triggered independently
// (a manual sync racing a login reconciliation); no mutual exclusion is
// imposed and a later fetch's wholesale replace wins over an earlier one.
type SyncServiceImpl struct {
	ledger  *LedgerServiceImpl
	remote  secondary.RemoteStore
	session secondary.SessionProvider
	log     zerolog.Logger
}

// NewSyncService creates a sync service with injected dependencies. A nil
// remote store disables all mirroring (local-only operation).
func NewSyncService(ledger *LedgerServiceImpl, remote secondary.RemoteStore, session secondary.SessionProvider, log zerolog.Logger) *SyncServiceImpl {
	return &SyncServiceImpl{ledger: ledger, remote: remote, session: session, log: log}
}

// FullSync upserts the entire local state to the remote store, keyed by
// entity id. Repeated syncs with unchanged data are idempotent. The profile
// uploads in parallel, but shifts wait for every hospital row: the remote
// schema's foreign key rejects a shift whose hospital has not landed yet.
func (s *SyncServiceImpl) FullSync(ctx context.Context) error {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return err
	}

	state := s.ledger.exportState()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.remote.UpsertProfile(gCtx, userID, profileToRemote(state.Profile)); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		for i := range state.Hospitals {
			if err := s.remote.UpsertHospital(gCtx, userID, hospitalToRemote(&state.Hospitals[i])); err != nil {
				return fmt.Errorf("hospital %s: %w", state.Hospitals[i].ID, err)
			}
		}
		for i := range state.Shifts {
			if err := s.remote.UpsertShift(gCtx, userID, shiftToRemote(&state.Shifts[i])); err != nil {
				return fmt.Errorf("shift %s: %w", state.Shifts[i].ID, err)
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("full sync: %w", err)
	}
	return nil
}

// FullFetch pulls the remote profile and collections and wholesale-replaces
// the local copies. Empty remote collections leave the corresponding local
// collection untouched.
func (s *SyncServiceImpl) FullFetch(ctx context.Context) error {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return err
	}

	var (
		profileRec   *secondary.RemoteProfileRecord
		hospitalRecs []*secondary.RemoteHospitalRecord
		shiftRecs    []*secondary.RemoteShiftRecord
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profileRec, err = s.remote.SelectProfile(gCtx, userID)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		hospitalRecs, err = s.remote.SelectHospitals(gCtx, userID)
		if err != nil {
			return fmt.Errorf("hospitals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		shiftRecs, err = s.remote.SelectShifts(gCtx, userID)
		if err != nil {
			return fmt.Errorf("shifts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("full fetch: %w", err)
	}

	now := s.ledger.now()
	var profile *models.UserProfile
	if profileRec != nil {
		p := remoteToProfile(profileRec)
		profile = &p
	}
	hospitals := make([]models.Hospital, 0, len(hospitalRecs))
	for _, rec := range hospitalRecs {
		hospitals = append(hospitals, remoteToHospital(rec, now))
	}
	shifts := make([]models.Shift, 0, len(shiftRecs))
	for _, rec := range shiftRecs {
		shifts = append(shifts, remoteToShift(rec, now))
	}

	s.ledger.applyRemote(ctx, profile, hospitals, shifts)
	return nil
}

// Reconcile runs the login-time policy: push local-only data first so it
// survives, then pull the authoritative remote copy. Conflicting edits from
// another device resolve as last-fetch-wins.
func (s *SyncServiceImpl) Reconcile(ctx context.Context) error {
	if s.ledger.hasLocalData() {
		if err := s.FullSync(ctx); err != nil {
			return fmt.Errorf("push before pull: %w", err)
		}
	}
	return s.FullFetch(ctx)
}

// HospitalUpserted pushes one hospital, best effort.
func (s *SyncServiceImpl) HospitalUpserted(ctx context.Context, hospital models.Hospital) {
	userID := s.pushUser(ctx)
	if userID == "" {
		return
	}
	if err := s.remote.UpsertHospital(ctx, userID, hospitalToRemote(&hospital)); err != nil {
		s.log.Warn().Err(err).Str("hospital_id", hospital.ID).Msg("hospital push failed; will retry on next full sync")
	}
}

// HospitalDeleted pushes one hospital delete, best effort.
func (s *SyncServiceImpl) HospitalDeleted(ctx context.Context, id string) {
	userID := s.pushUser(ctx)
	if userID == "" {
		return
	}
	if err := s.remote.DeleteHospital(ctx, userID, id); err != nil {
		s.log.Warn().Err(err).Str("hospital_id", id).Msg("hospital delete push failed")
	}
}

// ShiftUpserted pushes one shift, best effort.
func (s *SyncServiceImpl) ShiftUpserted(ctx context.Context, shift models.Shift) {
	userID := s.pushUser(ctx)
	if userID == "" {
		return
	}
	if err := s.remote.UpsertShift(ctx, userID, shiftToRemote(&shift)); err != nil {
		s.log.Warn().Err(err).Str("shift_id", shift.ID).Msg("shift push failed; will retry on next full sync")
	}
}

// ShiftDeleted pushes one shift delete, best effort.
func (s *SyncServiceImpl) ShiftDeleted(ctx context.Context, id string) {
	userID := s.pushUser(ctx)
	if userID == "" {
		return
	}
	if err := s.remote.DeleteShift(ctx, userID, id); err != nil {
		s.log.Warn().Err(err).Str("shift_id", id).Msg("shift delete push failed")
	}
}

// ProfileUpdated pushes the profile, best effort.
func (s *SyncServiceImpl) ProfileUpdated(ctx context.Context, profile models.UserProfile) {
	userID := s.pushUser(ctx)
	if userID == "" {
		return
	}
	if err := s.remote.UpsertProfile(ctx, userID, profileToRemote(profile)); err != nil {
		s.log.Warn().Err(err).Msg("profile push failed")
	}
}

// requireUser resolves the authenticated user for the explicit sync
// operations, which unlike pushes do report failure to the caller.
func (s *SyncServiceImpl) requireUser(ctx context.Context) (string, error) {
	if s.remote == nil {
		return "", fmt.Errorf("remote store is not configured")
	}
	userID, err := s.session.CurrentUserID(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("not signed in")
	}
	return userID, nil
}

// pushUser resolves the user for best-effort pushes: any problem, including
// a guest session, silently disables the push.
func (s *SyncServiceImpl) pushUser(ctx context.Context) string {
	if s.remote == nil {
		return ""
	}
	userID, err := s.session.CurrentUserID(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not resolve session; skipping push")
		return ""
	}
	return userID
}

// Ensure SyncServiceImpl implements both interfaces
var (
	_ primary.SyncService = (*SyncServiceImpl)(nil)
	_ RemotePusher        = (*SyncServiceImpl)(nil)
)
