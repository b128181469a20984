// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"github.com/perihelion/starflight/internal/model"
)

// Store defines the interface for all database operations in Starflight.
// This allows for multiple database backends to be implemented.
type Store interface {
	// Mission methods
	SaveMission(m model.Mission, logs []model.MissionLogEntry) (int, error)
	GetAllMissions() ([]model.Mission, error)
	GetMission(id int) (*model.Mission, error)
	GetMissionByName(name string) (*model.Mission, error)
	DeleteMission(id int) error

	// Mission logbook methods
	GetMissionLogs(missionID int) ([]model.MissionLogEntry, error)

	// Audit log methods
	GetAllAuditLogEntries() ([]model.AuditLogEntry, error)
	LogAction(action string, details string) error

	// Backup methods
	ExportDataForBackup() (*model.BackupData, error)
	ImportDataFromBackup(backup *model.BackupData) error
	IntegrateDataFromBackup(backup *model.BackupData) error
}
