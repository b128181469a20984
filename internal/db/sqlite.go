// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the SQLite implementation of the database store.
package db

import (
	"fmt"

	"github.com/perihelion/starflight/internal/model"
	"github.com/uptrace/bun"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SqliteStore is the SQLite implementation of the Store interface.
type SqliteStore struct {
	bun *bun.DB
}

// SaveMission stores a mission run with its logbook.
func (s *SqliteStore) SaveMission(m model.Mission, logs []model.MissionLogEntry) (int, error) {
	id, err := InsertMissionBun(s.bun, m, logs)
	if err == nil {
		_ = s.LogAction("SAVE_MISSION", fmt.Sprintf("mission: %s", m))
	}
	return id, err
}

// GetAllMissions retrieves all missions from the database.
func (s *SqliteStore) GetAllMissions() ([]model.Mission, error) {
	return GetAllMissionsBun(s.bun)
}

// GetMission retrieves a mission by ID.
func (s *SqliteStore) GetMission(id int) (*model.Mission, error) {
	return GetMissionBun(s.bun, id)
}

// GetMissionByName retrieves a mission by its unique name.
func (s *SqliteStore) GetMissionByName(name string) (*model.Mission, error) {
	return GetMissionByNameBun(s.bun, name)
}

// DeleteMission removes a mission and its logbook by mission ID.
func (s *SqliteStore) DeleteMission(id int) error {
	// Get mission details before deleting for logging.
	details := fmt.Sprintf("id: %d", id)
	if m, err := GetMissionBun(s.bun, id); err == nil {
		details = fmt.Sprintf("mission: %s", m)
	}
	err := DeleteMissionBun(s.bun, id)
	if err == nil {
		_ = s.LogAction("DELETE_MISSION", details)
	}
	return err
}

// GetMissionLogs retrieves a mission's logbook in order.
func (s *SqliteStore) GetMissionLogs(missionID int) ([]model.MissionLogEntry, error) {
	return GetMissionLogsBun(s.bun, missionID)
}

// GetAllAuditLogEntries retrieves all entries from the audit log, most recent first.
func (s *SqliteStore) GetAllAuditLogEntries() ([]model.AuditLogEntry, error) {
	return GetAllAuditLogEntriesBun(s.bun)
}

// LogAction records an audit trail event.
func (s *SqliteStore) LogAction(action string, details string) error {
	return LogActionBun(s.bun, action, details)
}

// ExportDataForBackup retrieves all data from the database for a backup.
// It uses a transaction to ensure a consistent snapshot of the data.
func (s *SqliteStore) ExportDataForBackup() (*model.BackupData, error) {
	return ExportDataForBackupBun(s.bun)
}

// ImportDataFromBackup restores the database from a backup data structure.
// It performs a full wipe-and-replace within a single transaction.
func (s *SqliteStore) ImportDataFromBackup(backup *model.BackupData) error {
	err := ImportDataFromBackupBun(s.bun, backup)
	if err == nil {
		_ = s.LogAction("RESTORE_BACKUP", fmt.Sprintf("missions: %d", len(backup.Missions)))
	}
	return err
}

// IntegrateDataFromBackup restores data from a backup in a non-destructive
// way, skipping missions that already exist.
func (s *SqliteStore) IntegrateDataFromBackup(backup *model.BackupData) error {
	err := IntegrateDataFromBackupBun(s.bun, backup)
	if err == nil {
		_ = s.LogAction("INTEGRATE_BACKUP", fmt.Sprintf("missions: %d", len(backup.Missions)))
	}
	return err
}
