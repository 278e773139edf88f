package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shiftledger/internal/models"
	"github.com/example/shiftledger/internal/ports/primary"
	"github.com/example/shiftledger/internal/ports/secondary"
)

func newTestSync(ledger *LedgerServiceImpl, remote secondary.RemoteStore, userID string) *SyncServiceImpl {
	return NewSyncService(ledger, remote, &fakeSession{userID: userID}, zerolog.Nop())
}

func TestFullSyncPushesEverything(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())
	remote := newFakeRemoteStore()
	sync := newTestSync(ledger, remote, "user-1")
	ctx := context.Background()

	require.NoError(t, ledger.SetProfile(ctx, models.UserProfile{Name: "Dana"}))
	h, err := ledger.AddHospital(ctx, primary.AddHospitalRequest{Name: "H", PaymentModel: models.PaymentFixed, FixedRate: 100})
	require.NoError(t, err)
	sh, err := ledger.AddShift(ctx, primary.AddShiftRequest{HospitalID: h.ID})
	require.NoError(t, err)

	require.NoError(t, sync.FullSync(ctx))

	assert.Equal(t, "Dana", remote.profiles["user-1"].Name)
	require.Contains(t, remote.hospitals["user-1"], h.ID)
	assert.Equal(t, "fixed", remote.hospitals["user-1"][h.ID].PaymentModel)
	assert.Contains(t, remote.shifts["user-1"], sh.ID)
}

// fkRemoteStore mirrors the remote schema's shift-to-hospital foreign key:
// a shift upsert is rejected unless its hospital row already landed.
// Hospital upserts are slowed down so any ordering violation surfaces.
type fkRemoteStore struct {
	*fakeRemoteStore
}

func (f *fkRemoteStore) UpsertHospital(ctx context.Context, userID string, rec *secondary.RemoteHospitalRecord) error {
	time.Sleep(20 * time.Millisecond)
	return f.fakeRemoteStore.UpsertHospital(ctx, userID, rec)
}

func (f *fkRemoteStore) UpsertShift(ctx context.Context, userID string, rec *secondary.RemoteShiftRecord) error {
	f.mu.Lock()
	_, ok := f.hospitals[userID][rec.HospitalID]
	f.mu.Unlock()
	if !ok {
		return fmt.Errorf("foreign key constraint fails: hospital %s not present", rec.HospitalID)
	}
	return f.fakeRemoteStore.UpsertShift(ctx, userID, rec)
}

func TestFullSyncUpsertsHospitalsBeforeShifts(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())
	remote := &fkRemoteStore{fakeRemoteStore: newFakeRemoteStore()}
	sync := newTestSync(ledger, remote, "user-1")
	ctx := context.Background()

	h, err := ledger.AddHospital(ctx, primary.AddHospitalRequest{Name: "H", PaymentModel: models.PaymentFixed, FixedRate: 100})
	require.NoError(t, err)
	sh, err := ledger.AddShift(ctx, primary.AddShiftRequest{HospitalID: h.ID})
	require.NoError(t, err)

	require.NoError(t, sync.FullSync(ctx))
	assert.Contains(t, remote.shifts["user-1"], sh.ID)
}

func TestFullSyncIsIdempotent(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())
	remote := newFakeRemoteStore()
	sync := newTestSync(ledger, remote, "user-1")
	ctx := context.Background()

	h, err := ledger.AddHospital(ctx, primary.AddHospitalRequest{Name: "H"})
	require.NoError(t, err)

	require.NoError(t, sync.FullSync(ctx))
	require.NoError(t, sync.FullSync(ctx))

	assert.Len(t, remote.hospitals["user-1"], 1)
	assert.Equal(t, h.ID, remote.hospitals["user-1"][h.ID].ID)
}

func TestFullSyncRequiresSession(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())

	t.Run("guest session", func(t *testing.T) {
		sync := newTestSync(ledger, newFakeRemoteStore(), "")
		err := sync.FullSync(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not signed in")
	})

	t.Run("no remote configured", func(t *testing.T) {
		sync := newTestSync(ledger, nil, "user-1")
		err := sync.FullSync(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "remote store is not configured")
	})
}

func TestFullFetchReplacesLocalState(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())
	remote := newFakeRemoteStore()
	sync := newTestSync(ledger, remote, "user-1")
	ctx := context.Background()

	_, err := ledger.AddHospital(ctx, primary.AddHospitalRequest{Name: "stale"})
	require.NoError(t, err)

	remote.profiles["user-1"] = &secondary.RemoteProfileRecord{Name: "Dana"}
	remote.hospitals["user-1"] = map[string]*secondary.RemoteHospitalRecord{
		"r1": {ID: "r1", Name: "Remote General", PaymentModel: "fixed", FixedRate: 900, CreatedAt: "2025-05-01T08:00:00Z", UpdatedAt: "2025-05-01T08:00:00Z"},
	}
	remote.shifts["user-1"] = map[string]*secondary.RemoteShiftRecord{
		"s1": {ID: "s1", HospitalID: "r1", Date: "2025-05-02T00:00:00Z", StartTime: "08:00", EndTime: "16:00", TotalEarnings: 900},
	}

	require.NoError(t, sync.FullFetch(ctx))

	assert.Equal(t, "Dana", ledger.Profile(ctx).Name)
	hospitals := ledger.Hospitals(ctx)
	require.Len(t, hospitals, 1)
	assert.Equal(t, "Remote General", hospitals[0].Name)
	assert.Equal(t, time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC), hospitals[0].CreatedAt)
	shifts := ledger.Shifts(ctx)
	require.Len(t, shifts, 1)
	assert.Equal(t, 900.0, shifts[0].TotalEarnings)
}

func TestFullFetchEmptyRemoteKeepsLocalData(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())
	remote := newFakeRemoteStore()
	sync := newTestSync(ledger, remote, "user-1")
	ctx := context.Background()

	h, err := ledger.AddHospital(ctx, primary.AddHospitalRequest{Name: "local"})
	require.NoError(t, err)
	_, err = ledger.AddShift(ctx, primary.AddShiftRequest{HospitalID: h.ID})
	require.NoError(t, err)

	require.NoError(t, sync.FullFetch(ctx))

	assert.Len(t, ledger.Hospitals(ctx), 1)
	assert.Len(t, ledger.Shifts(ctx), 1)
}

func TestReconcilePushesLocalDataFirst(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())
	remote := newFakeRemoteStore()
	sync := newTestSync(ledger, remote, "user-1")
	ctx := context.Background()

	local, err := ledger.AddHospital(ctx, primary.AddHospitalRequest{Name: "guest work"})
	require.NoError(t, err)
	remote.hospitals["user-1"] = map[string]*secondary.RemoteHospitalRecord{
		"r1": {ID: "r1", Name: "Remote General", PaymentModel: "fixed"},
	}

	require.NoError(t, sync.Reconcile(ctx))

	// The guest-mode hospital was pushed before the pull, so both survive.
	assert.Contains(t, remote.hospitals["user-1"], local.ID)
	ids := make(map[string]bool)
	for _, h := range ledger.Hospitals(ctx) {
		ids[h.ID] = true
	}
	assert.True(t, ids[local.ID], "local hospital lost by reconcile")
	assert.True(t, ids["r1"], "remote hospital not pulled")
}

func TestReconcileSkipsPushWhenLocalEmpty(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())
	remote := newFakeRemoteStore()
	sync := newTestSync(ledger, remote, "user-1")

	require.NoError(t, sync.Reconcile(context.Background()))
	assert.Empty(t, remote.upserts)
}

func TestPushMethodsSwallowErrors(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())
	remote := newFakeRemoteStore()
	remote.failWith = assert.AnError
	sync := newTestSync(ledger, remote, "user-1")
	ctx := context.Background()

	// None of these may panic or surface the failure.
	sync.HospitalUpserted(ctx, models.Hospital{ID: "h1"})
	sync.HospitalDeleted(ctx, "h1")
	sync.ShiftUpserted(ctx, models.Shift{ID: "s1"})
	sync.ShiftDeleted(ctx, "s1")
	sync.ProfileUpdated(ctx, models.UserProfile{Name: "Dana"})
}

func TestPushMethodsSkipGuestSession(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())
	remote := newFakeRemoteStore()
	sync := newTestSync(ledger, remote, "")

	sync.HospitalUpserted(context.Background(), models.Hospital{ID: "h1"})
	assert.Empty(t, remote.upserts)
}

func TestFullSyncWrapsRemoteErrors(t *testing.T) {
	ledger := newTestLedger(&fakeSnapshotStore{}, newFakeNotifier())
	remote := newFakeRemoteStore()
	remote.failWith = assert.AnError
	sync := newTestSync(ledger, remote, "user-1")
	ctx := context.Background()

	_, err := ledger.AddHospital(ctx, primary.AddHospitalRequest{Name: "H"})
	require.NoError(t, err)

	err = sync.FullSync(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "full sync")
}
