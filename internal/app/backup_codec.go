package app

import (
	"time"

	"github.com/example/shiftledger/internal/ports/primary"
	"github.com/example/shiftledger/internal/ports/secondary"
)

// BackupVersion tags exported files so future format changes can be
// detected on restore.
const BackupVersion = "1.0"

// ExportToBackup wraps exported state in the external backup format.
func ExportToBackup(data *primary.ExportData, exportedAt time.Time) *secondary.BackupFile {
	rec := stateToRecord(data.Profile, data.NotificationsEnabled, data.Hospitals, data.Shifts)
	return &secondary.BackupFile{
		Version:              BackupVersion,
		ExportDate:           exportedAt.Format(timeLayout),
		UserProfile:          &rec.UserProfile,
		NotificationsEnabled: rec.NotificationsEnabled,
		Hospitals:            rec.Hospitals,
		Shifts:               rec.Shifts,
	}
}

// BackupToImport converts a validated backup file into the wholesale
// replacement request. Timestamps that fail to parse fall back to now.
func BackupToImport(file *secondary.BackupFile, now time.Time) primary.ImportRequest {
	rec := secondary.SnapshotRecord{
		NotificationsEnabled: file.NotificationsEnabled,
		Hospitals:            file.Hospitals,
		Shifts:               file.Shifts,
	}
	if file.UserProfile != nil {
		rec.UserProfile = *file.UserProfile
	}
	profile, notificationsEnabled, hospitals, shifts := recordToState(&rec, now)
	return primary.ImportRequest{
		Profile:              profile,
		NotificationsEnabled: notificationsEnabled,
		Hospitals:            hospitals,
		Shifts:               shifts,
	}
}
