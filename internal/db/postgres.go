// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the PostgreSQL implementation of the database store.
// It is driven by the pgx stdlib driver and shares the Bun adapters with
// the other backends.
package db

import (
	"fmt"

	"github.com/perihelion/starflight/internal/model"
	"github.com/uptrace/bun"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

// PostgresStore is the PostgreSQL implementation of the Store interface.
type PostgresStore struct {
	bun *bun.DB
}

// SaveMission stores a mission run with its logbook.
func (s *PostgresStore) SaveMission(m model.Mission, logs []model.MissionLogEntry) (int, error) {
	id, err := InsertMissionBun(s.bun, m, logs)
	if err == nil {
		_ = s.LogAction("SAVE_MISSION", fmt.Sprintf("mission: %s", m))
	}
	return id, err
}

// GetAllMissions retrieves all missions from the database.
func (s *PostgresStore) GetAllMissions() ([]model.Mission, error) {
	return GetAllMissionsBun(s.bun)
}

// GetMission retrieves a mission by ID.
func (s *PostgresStore) GetMission(id int) (*model.Mission, error) {
	return GetMissionBun(s.bun, id)
}

// GetMissionByName retrieves a mission by its unique name.
func (s *PostgresStore) GetMissionByName(name string) (*model.Mission, error) {
	return GetMissionByNameBun(s.bun, name)
}

// DeleteMission removes a mission and its logbook by mission ID.
func (s *PostgresStore) DeleteMission(id int) error {
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
func (s *PostgresStore) GetMissionLogs(missionID int) ([]model.MissionLogEntry, error) {
	return GetMissionLogsBun(s.bun, missionID)
}

// GetAllAuditLogEntries retrieves all entries from the audit log, most recent first.
func (s *PostgresStore) GetAllAuditLogEntries() ([]model.AuditLogEntry, error) {
	return GetAllAuditLogEntriesBun(s.bun)
}

// LogAction records an audit trail event.
func (s *PostgresStore) LogAction(action string, details string) error {
	return LogActionBun(s.bun, action, details)
}

// ExportDataForBackup retrieves all data from the database for a backup.
func (s *PostgresStore) ExportDataForBackup() (*model.BackupData, error) {
	return ExportDataForBackupBun(s.bun)
}

// ImportDataFromBackup restores the database from a backup data structure.
func (s *PostgresStore) ImportDataFromBackup(backup *model.BackupData) error {
	err := ImportDataFromBackupBun(s.bun, backup)
	if err == nil {
		_ = s.LogAction("RESTORE_BACKUP", fmt.Sprintf("missions: %d", len(backup.Missions)))
	}
	return err
}

// IntegrateDataFromBackup restores data from a backup non-destructively.
func (s *PostgresStore) IntegrateDataFromBackup(backup *model.BackupData) error {
	err := IntegrateDataFromBackupBun(s.bun, backup)
	if err == nil {
		_ = s.LogAction("INTEGRATE_BACKUP", fmt.Sprintf("missions: %d", len(backup.Missions)))
	}
	return err
}
