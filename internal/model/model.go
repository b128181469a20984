// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the persisted domain entities of Starflight.
// The structs here are plain data carriers shared between the database
// layer, the CLI and the TUI.
package model

import "fmt"

// Mission is one simulated mission run stored in the logbook database.
type Mission struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// CreatedAt is an RFC3339 timestamp of when the run was recorded.
	CreatedAt string `json:"created_at"`

	// Mission parameters and outcome, in display units.
	DestinationLightYears float64 `json:"destination_light_years"`
	PayloadMassKg         float64 `json:"payload_mass_kg"`
	FlightTimeYears       float64 `json:"flight_time_years"`
	FinalVelocityC        float64 `json:"final_velocity_c"`
	FinalPositionLy       float64 `json:"final_position_ly"`
	RemainingFuelKg       float64 `json:"remaining_fuel_kg"`
	Arrived               bool    `json:"arrived"`
}

// String returns a compact identifier for logs and error messages.
func (m Mission) String() string {
	return fmt.Sprintf("%s (%.3g ly)", m.Name, m.DestinationLightYears)
}

// MissionLogEntry is one logbook line of a mission: the ship state at a
// point in mission time plus an optional free-form message.
type MissionLogEntry struct {
	ID        int `json:"id"`
	MissionID int `json:"mission_id"`
	// Seq orders entries within a mission.
	Seq        int     `json:"seq"`
	TimeS      float64 `json:"time_s"`
	PositionM  float64 `json:"position_m"`
	VelocityMS float64 `json:"velocity_ms"`
	FuelKg     float64 `json:"fuel_kg"`
	Message    string  `json:"message"`
}

// AuditLogEntry records a mutation of the mission database.
type AuditLogEntry struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

// BackupData is a container for all data exported by `starflight backup`.
// SchemaVersion guards restores across schema migrations.
type BackupData struct {
	SchemaVersion int `json:"schema_version"`

	Missions        []Mission         `json:"missions"`
	MissionLogs     []MissionLogEntry `json:"mission_logs"`
	AuditLogEntries []AuditLogEntry   `json:"audit_log_entries"`
}

// CurrentSchemaVersion is the version written into new backups.
const CurrentSchemaVersion = 1
