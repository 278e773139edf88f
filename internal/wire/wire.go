// Package wire provides dependency injection for the shiftledger
// application. It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"sync"

	"github.com/example/shiftledger/internal/adapters/mysql"
	"github.com/example/shiftledger/internal/adapters/notify"
	"github.com/example/shiftledger/internal/adapters/sqlite"
	"github.com/example/shiftledger/internal/app"
	"github.com/example/shiftledger/internal/config"
	"github.com/example/shiftledger/internal/db"
	"github.com/example/shiftledger/internal/logger"
	"github.com/example/shiftledger/internal/ports/primary"
	"github.com/example/shiftledger/internal/ports/secondary"
	"github.com/example/shiftledger/internal/session"
)

var (
	ledgerService primary.LedgerService
	syncService   primary.SyncService
	fileSession   *session.FileSession
	once          sync.Once
)

// LedgerService returns the singleton LedgerService instance, loaded from
// the local snapshot.
func LedgerService() primary.LedgerService {
	once.Do(initServices)
	return ledgerService
}

// SyncService returns the singleton SyncService instance.
func SyncService() primary.SyncService {
	once.Do(initServices)
	return syncService
}

// Session returns the singleton session store.
func Session() *session.FileSession {
	once.Do(initServices)
	return fileSession
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lb := logger.New()
	if cfg.LogFile != "" {
		lb = lb.FromPath(cfg.LogFile)
	}
	zl, err := lb.Make()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	database, err := db.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Secondary ports: local slot, notifier, session, optional remote.
	snapshots := sqlite.NewSnapshotRepository(database)
	notifier := notify.NewLogNotifier(zl)
	fileSession = session.New(cfg.DataDir)

	var remote secondary.RemoteStore
	if cfg.RemoteDSN != "" {
		store, err := mysql.New(cfg.RemoteDSN)
		if err != nil {
			log.Fatalf("failed to open remote store: %v", err)
		}
		remote = store
	}

	ledger := app.NewLedgerService(snapshots, notifier, zl)
	sync := app.NewSyncService(ledger, remote, fileSession, zl)
	ledger.SetPusher(sync)

	if err := ledger.Load(context.Background()); err != nil {
		log.Fatalf("failed to restore local snapshot: %v", err)
	}

	ledgerService = ledger
	syncService = sync
}
