// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os/user"
	"strings"
	"time"

	"github.com/perihelion/starflight/internal/model"
	"github.com/uptrace/bun"
)

// MissionModel maps the `missions` table for Bun queries.
type MissionModel struct {
	bun.BaseModel `bun:"table:missions"`
	ID            int            `bun:"id,pk,autoincrement"`
	Name          string         `bun:"name"`
	Description   sql.NullString `bun:"description"`
	CreatedAt     string         `bun:"created_at"`
	DestinationLy float64        `bun:"destination_ly"`
	PayloadMassKg float64        `bun:"payload_mass_kg"`
	FlightYears   float64        `bun:"flight_time_years"`
	FinalVelC     float64        `bun:"final_velocity_c"`
	FinalPosLy    float64        `bun:"final_position_ly"`
	RemainingFuel float64        `bun:"remaining_fuel_kg"`
	Arrived       bool           `bun:"arrived"`
}

// MissionLogModel maps the `mission_logs` table.
type MissionLogModel struct {
	bun.BaseModel `bun:"table:mission_logs"`
	ID            int            `bun:"id,pk,autoincrement"`
	MissionID     int            `bun:"mission_id"`
	Seq           int            `bun:"seq"`
	TimeS         float64        `bun:"time_s"`
	PositionM     float64        `bun:"position_m"`
	VelocityMS    float64        `bun:"velocity_ms"`
	FuelKg        float64        `bun:"fuel_kg"`
	Message       sql.NullString `bun:"message"`
}

// AuditLogModel maps the audit_log table.
type AuditLogModel struct {
	bun.BaseModel `bun:"table:audit_log"`
	ID            int    `bun:"id,pk,autoincrement"`
	Timestamp     string `bun:"timestamp"`
	Username      string `bun:"username"`
	Action        string `bun:"action"`
	Details       string `bun:"details"`
}

// --- Mapping helpers (centralized conversions) ---

func missionModelToModel(m MissionModel) model.Mission {
	out := model.Mission{
		ID:                    m.ID,
		Name:                  m.Name,
		CreatedAt:             m.CreatedAt,
		DestinationLightYears: m.DestinationLy,
		PayloadMassKg:         m.PayloadMassKg,
		FlightTimeYears:       m.FlightYears,
		FinalVelocityC:        m.FinalVelC,
		FinalPositionLy:       m.FinalPosLy,
		RemainingFuelKg:       m.RemainingFuel,
		Arrived:               m.Arrived,
	}
	if m.Description.Valid {
		out.Description = m.Description.String
	}
	return out
}

func missionToModel(m model.Mission) MissionModel {
	return MissionModel{
		ID:            m.ID,
		Name:          m.Name,
		Description:   sql.NullString{String: m.Description, Valid: m.Description != ""},
		CreatedAt:     m.CreatedAt,
		DestinationLy: m.DestinationLightYears,
		PayloadMassKg: m.PayloadMassKg,
		FlightYears:   m.FlightTimeYears,
		FinalVelC:     m.FinalVelocityC,
		FinalPosLy:    m.FinalPositionLy,
		RemainingFuel: m.RemainingFuelKg,
		Arrived:       m.Arrived,
	}
}

func missionLogModelToModel(l MissionLogModel) model.MissionLogEntry {
	out := model.MissionLogEntry{
		ID:         l.ID,
		MissionID:  l.MissionID,
		Seq:        l.Seq,
		TimeS:      l.TimeS,
		PositionM:  l.PositionM,
		VelocityMS: l.VelocityMS,
		FuelKg:     l.FuelKg,
	}
	if l.Message.Valid {
		out.Message = l.Message.String
	}
	return out
}

func auditLogModelToModel(a AuditLogModel) model.AuditLogEntry {
	return model.AuditLogEntry{ID: a.ID, Timestamp: a.Timestamp, Username: a.Username, Action: a.Action, Details: a.Details}
}

// InsertMissionBun stores a mission and its logbook in one transaction and
// returns the assigned mission ID.
func InsertMissionBun(bdb *bun.DB, m model.Mission, logs []model.MissionLogEntry) (int, error) {
	ctx := context.Background()
	mm := missionToModel(m)
	mm.ID = 0
	if mm.CreatedAt == "" {
		mm.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	err := WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&mm).
			Column("name", "description", "created_at", "destination_ly", "payload_mass_kg",
				"flight_time_years", "final_velocity_c", "final_position_ly", "remaining_fuel_kg", "arrived").
			Returning("id").Exec(ctx); err != nil {
			return MapDBError(err)
		}
		for i, entry := range logs {
			lm := MissionLogModel{
				MissionID:  mm.ID,
				Seq:        i,
				TimeS:      entry.TimeS,
				PositionM:  entry.PositionM,
				VelocityMS: entry.VelocityMS,
				FuelKg:     entry.FuelKg,
				Message:    sql.NullString{String: entry.Message, Valid: entry.Message != ""},
			}
			if _, err := tx.NewInsert().Model(&lm).
				Column("mission_id", "seq", "time_s", "position_m", "velocity_ms", "fuel_kg", "message").
				Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return mm.ID, nil
}

// GetAllMissionsBun returns all missions, newest first.
func GetAllMissionsBun(bdb *bun.DB) ([]model.Mission, error) {
	ctx := context.Background()
	var mm []MissionModel
	if err := bdb.NewSelect().Model(&mm).OrderExpr("created_at DESC, id DESC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Mission, 0, len(mm))
	for _, m := range mm {
		out = append(out, missionModelToModel(m))
	}
	return out, nil
}

// GetMissionBun returns a mission by ID, or ErrNotFound.
func GetMissionBun(bdb *bun.DB, id int) (*model.Mission, error) {
	ctx := context.Background()
	var mm MissionModel
	if err := bdb.NewSelect().Model(&mm).Where("id = ?", id).Limit(1).Scan(ctx); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: mission %d", ErrNotFound, id)
		}
		return nil, err
	}
	m := missionModelToModel(mm)
	return &m, nil
}

// GetMissionByNameBun returns a mission by its unique name, or ErrNotFound.
func GetMissionByNameBun(bdb *bun.DB, name string) (*model.Mission, error) {
	ctx := context.Background()
	var mm MissionModel
	if err := bdb.NewSelect().Model(&mm).Where("name = ?", name).Limit(1).Scan(ctx); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: mission %q", ErrNotFound, name)
		}
		return nil, err
	}
	m := missionModelToModel(mm)
	return &m, nil
}

// DeleteMissionBun removes a mission and its logbook. The explicit logbook
// delete covers engines where the FK cascade is not enforced (SQLite with
// foreign_keys off).
func DeleteMissionBun(bdb *bun.DB, id int) error {
	ctx := context.Background()
	return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*MissionLogModel)(nil)).Where("mission_id = ?", id).Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().Model((*MissionModel)(nil)).Where("id = ?", id).Exec(ctx)
		return err
	})
}

// GetMissionLogsBun returns the logbook of a mission ordered by sequence.
func GetMissionLogsBun(bdb *bun.DB, missionID int) ([]model.MissionLogEntry, error) {
	ctx := context.Background()
	var lm []MissionLogModel
	if err := bdb.NewSelect().Model(&lm).Where("mission_id = ?", missionID).OrderExpr("seq").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.MissionLogEntry, 0, len(lm))
	for _, l := range lm {
		out = append(out, missionLogModelToModel(l))
	}
	return out, nil
}

// GetAllAuditLogEntriesBun retrieves audit log entries ordered by timestamp desc.
func GetAllAuditLogEntriesBun(bdb *bun.DB) ([]model.AuditLogEntry, error) {
	ctx := context.Background()
	var am []AuditLogModel
	if err := bdb.NewSelect().Model(&am).OrderExpr("timestamp DESC, id DESC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.AuditLogEntry, 0, len(am))
	for _, a := range am {
		out = append(out, auditLogModelToModel(a))
	}
	return out, nil
}

// LogActionBun inserts an audit log entry with the current OS user.
func LogActionBun(bdb *bun.DB, action string, details string) error {
	ctx := context.Background()
	curUser, err := user.Current()
	username := "unknown"
	if err == nil {
		if parts := strings.Split(curUser.Username, `\`); len(parts) > 1 {
			username = parts[1]
		} else {
			username = curUser.Username
		}
	}
	_, err = ExecRaw(ctx, bdb, "INSERT INTO audit_log (username, action, details) VALUES (?, ?, ?)", username, action, details)
	return MapDBError(err)
}

// ExportDataForBackupBun exports all tables' data into a model.BackupData using a Bun transaction.
func ExportDataForBackupBun(bdb *bun.DB) (*model.BackupData, error) {
	ctx := context.Background()
	var backup *model.BackupData
	err := WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		backup = &model.BackupData{SchemaVersion: model.CurrentSchemaVersion}

		var mm []MissionModel
		if err := tx.NewSelect().Model(&mm).OrderExpr("id").Scan(ctx); err != nil {
			return err
		}
		for _, m := range mm {
			backup.Missions = append(backup.Missions, missionModelToModel(m))
		}

		var lm []MissionLogModel
		if err := tx.NewSelect().Model(&lm).OrderExpr("mission_id, seq").Scan(ctx); err != nil {
			return err
		}
		for _, l := range lm {
			backup.MissionLogs = append(backup.MissionLogs, missionLogModelToModel(l))
		}

		var am []AuditLogModel
		if err := tx.NewSelect().Model(&am).OrderExpr("id").Scan(ctx); err != nil {
			return err
		}
		for _, a := range am {
			backup.AuditLogEntries = append(backup.AuditLogEntries, auditLogModelToModel(a))
		}
		return nil
	})
	return backup, err
}

// ImportDataFromBackupBun performs a full wipe-and-replace using a Bun transaction.
func ImportDataFromBackupBun(bdb *bun.DB, backup *model.BackupData) error {
	ctx := context.Background()
	return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		for _, t := range []string{"mission_logs", "audit_log", "missions"} {
			if _, err := ExecRaw(ctx, tx, fmt.Sprintf("DELETE FROM %s", t)); err != nil {
				return err
			}
		}
		for _, m := range backup.Missions {
			if _, err := ExecRaw(ctx, tx,
				`INSERT INTO missions (id, name, description, created_at, destination_ly, payload_mass_kg,
					flight_time_years, final_velocity_c, final_position_ly, remaining_fuel_kg, arrived)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				m.ID, m.Name, m.Description, m.CreatedAt, m.DestinationLightYears, m.PayloadMassKg,
				m.FlightTimeYears, m.FinalVelocityC, m.FinalPositionLy, m.RemainingFuelKg, m.Arrived); err != nil {
				return MapDBError(err)
			}
		}
		for _, l := range backup.MissionLogs {
			if _, err := ExecRaw(ctx, tx,
				"INSERT INTO mission_logs (id, mission_id, seq, time_s, position_m, velocity_ms, fuel_kg, message) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
				l.ID, l.MissionID, l.Seq, l.TimeS, l.PositionM, l.VelocityMS, l.FuelKg, l.Message); err != nil {
				return MapDBError(err)
			}
		}
		// Convert RFC3339 timestamps to time.Time when possible so MySQL accepts them.
		for _, a := range backup.AuditLogEntries {
			var ts interface{} = a.Timestamp
			if a.Timestamp != "" {
				if parsed, err := time.Parse(time.RFC3339, a.Timestamp); err == nil {
					ts = parsed
				}
			}
			if _, err := ExecRaw(ctx, tx,
				"INSERT INTO audit_log (id, timestamp, username, action, details) VALUES (?, ?, ?, ?, ?)",
				a.ID, ts, a.Username, a.Action, a.Details); err != nil {
				return MapDBError(err)
			}
		}
		return nil
	})
}

// IntegrateDataFromBackupBun performs a non-destructive restore: missions
// whose name already exists are skipped, along with their logbooks.
func IntegrateDataFromBackupBun(bdb *bun.DB, backup *model.BackupData) error {
	ctx := context.Background()
	return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		for _, m := range backup.Missions {
			exists, err := tx.NewSelect().Model((*MissionModel)(nil)).Where("name = ?", m.Name).Exists(ctx)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			mm := missionToModel(m)
			mm.ID = 0
			if _, err := tx.NewInsert().Model(&mm).
				Column("name", "description", "created_at", "destination_ly", "payload_mass_kg",
					"flight_time_years", "final_velocity_c", "final_position_ly", "remaining_fuel_kg", "arrived").
				Returning("id").Exec(ctx); err != nil {
				return MapDBError(err)
			}
			for _, l := range backup.MissionLogs {
				if l.MissionID != m.ID {
					continue
				}
				lm := MissionLogModel{
					MissionID:  mm.ID,
					Seq:        l.Seq,
					TimeS:      l.TimeS,
					PositionM:  l.PositionM,
					VelocityMS: l.VelocityMS,
					FuelKg:     l.FuelKg,
					Message:    sql.NullString{String: l.Message, Valid: l.Message != ""},
				}
				if _, err := tx.NewInsert().Model(&lm).
					Column("mission_id", "seq", "time_s", "position_m", "velocity_ms", "fuel_kg", "message").
					Exec(ctx); err != nil {
					return MapDBError(err)
				}
			}
		}
		return nil
	})
}
