package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/shiftledger/internal/ports/secondary"
)

// Ensure the fakes implement their interfaces
var (
	_ secondary.SnapshotStore   = (*fakeSnapshotStore)(nil)
	_ secondary.Notifier        = (*fakeNotifier)(nil)
	_ secondary.RemoteStore     = (*fakeRemoteStore)(nil)
	_ secondary.SessionProvider = (*fakeSession)(nil)
)

// fakeSnapshotStore implements secondary.SnapshotStore in memory.
type fakeSnapshotStore struct {
	mu      sync.Mutex
	stored  *secondary.SnapshotRecord
	saveErr error
	loadErr error
	saves   int
}

func (f *fakeSnapshotStore) Save(ctx context.Context, rec *secondary.SnapshotRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = rec
	f.saves++
	return nil
}

func (f *fakeSnapshotStore) Load(ctx context.Context) (*secondary.SnapshotRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.stored, nil
}

func (f *fakeSnapshotStore) last() *secondary.SnapshotRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored
}

type scheduledNotification struct {
	id     int64
	fireAt time.Time
	title  string
	body   string
}

// fakeNotifier implements secondary.Notifier, recording requests.
type fakeNotifier struct {
	mu            sync.Mutex
	permission    bool
	permissionErr error
	scheduled     []scheduledNotification
	cancelled     [][]int64
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{permission: true}
}

func (f *fakeNotifier) RequestPermission(ctx context.Context) (bool, error) {
	if f.permissionErr != nil {
		return false, f.permissionErr
	}
	return f.permission, nil
}

func (f *fakeNotifier) Schedule(ctx context.Context, id int64, fireAt time.Time, title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, scheduledNotification{id: id, fireAt: fireAt, title: title, body: body})
	return nil
}

func (f *fakeNotifier) Cancel(ctx context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, ids)
	return nil
}

// fakeRemoteStore implements secondary.RemoteStore in memory, keyed by user.
type fakeRemoteStore struct {
	mu        sync.Mutex
	hospitals map[string]map[string]*secondary.RemoteHospitalRecord
	shifts    map[string]map[string]*secondary.RemoteShiftRecord
	profiles  map[string]*secondary.RemoteProfileRecord
	failWith  error
	upserts   []string
}

func newFakeRemoteStore() *fakeRemoteStore {
	return &fakeRemoteStore{
		hospitals: make(map[string]map[string]*secondary.RemoteHospitalRecord),
		shifts:    make(map[string]map[string]*secondary.RemoteShiftRecord),
		profiles:  make(map[string]*secondary.RemoteProfileRecord),
	}
}

func (f *fakeRemoteStore) UpsertHospital(ctx context.Context, userID string, rec *secondary.RemoteHospitalRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if f.hospitals[userID] == nil {
		f.hospitals[userID] = make(map[string]*secondary.RemoteHospitalRecord)
	}
	f.hospitals[userID][rec.ID] = rec
	f.upserts = append(f.upserts, "hospital:"+rec.ID)
	return nil
}

func (f *fakeRemoteStore) DeleteHospital(ctx context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.hospitals[userID], id)
	return nil
}

func (f *fakeRemoteStore) SelectHospitals(ctx context.Context, userID string) ([]*secondary.RemoteHospitalRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]*secondary.RemoteHospitalRecord, 0, len(f.hospitals[userID]))
	for _, rec := range f.hospitals[userID] {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeRemoteStore) UpsertShift(ctx context.Context, userID string, rec *secondary.RemoteShiftRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if f.shifts[userID] == nil {
		f.shifts[userID] = make(map[string]*secondary.RemoteShiftRecord)
	}
	f.shifts[userID][rec.ID] = rec
	f.upserts = append(f.upserts, "shift:"+rec.ID)
	return nil
}

func (f *fakeRemoteStore) DeleteShift(ctx context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.shifts[userID], id)
	return nil
}

func (f *fakeRemoteStore) SelectShifts(ctx context.Context, userID string) ([]*secondary.RemoteShiftRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]*secondary.RemoteShiftRecord, 0, len(f.shifts[userID]))
	for _, rec := range f.shifts[userID] {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeRemoteStore) UpsertProfile(ctx context.Context, userID string, rec *secondary.RemoteProfileRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.profiles[userID] = rec
	f.upserts = append(f.upserts, "profile")
	return nil
}

func (f *fakeRemoteStore) SelectProfile(ctx context.Context, userID string) (*secondary.RemoteProfileRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.profiles[userID], nil
}

// fakeSession implements secondary.SessionProvider with a fixed user.
type fakeSession struct {
	userID string
	err    error
}

func (f *fakeSession) CurrentUserID(ctx context.Context) (string, error) {
	return f.userID, f.err
}

// newTestLedger builds a ledger with fakes and deterministic id/clock
// injection. IDs are id-1, id-2, ... in creation order.
func newTestLedger(snapshots *fakeSnapshotStore, notifier *fakeNotifier) *LedgerServiceImpl {
	s := NewLedgerService(snapshots, notifier, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }
	n := 0
	var mu sync.Mutex
	s.newID = func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s
}
